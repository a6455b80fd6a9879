// SPDX-License-Identifier: MIT

package coef

import "fmt"

// FormatEntry renders one breakdown line: signed coefficient to three
// decimals, the Z label under base, and the term name.
//
//	+1.000 Z5 - Primary Astigmatism 00deg
func FormatEntry(e Entry, base int) string {
	return fmt.Sprintf("%+.3f Z%d - %s", e.Coefficient, e.Term.Index-1+base, e.Term.Name)
}

// Lines renders every active entry with FormatEntry, ascending by index.
func (v *Vector) Lines() []string {
	active := v.Active()
	out := make([]string, len(active))
	for i, e := range active {
		out[i] = FormatEntry(e, int(v.base))
	}
	return out
}
