// SPDX-License-Identifier: MIT
// id_fn.go — vertex-ID schemes for graph constructors.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex label from its zero-based index.
// It must be a pure, deterministic function: given the same idx, it always
// returns the same string. Panics in implementations indicate programmer
// error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) where d is the number of digits. Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25],
// e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// PrefixIDFn returns an IDFn producing prefix + decimal index,
// e.g. PrefixIDFn("v"): 0→"v0", 1→"v1".
// Never panics.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
