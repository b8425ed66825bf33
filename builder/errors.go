// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     implementations attach context via %w wrapping.
//   - Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that the requested vertex count is smaller
// than the minimum the constructor needs (e.g. Path needs n ≥ 2).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilConstructor indicates a nil Constructor was passed to BuildGraph.
// This is a programmer error surfaced as an error rather than a panic.
var ErrNilConstructor = errors.New("builder: nil constructor")
