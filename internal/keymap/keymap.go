// Package keymap holds static scan-code remapping tables consumed by the
// input layer. Each table is a sequence of {From, To} pairs sorted by From;
// lookup is a binary search and unknown codes pass through unchanged.
package keymap

import (
	"sort"

	"github.com/dkoosis/bootcheck/internal/selftest"
)

// Pair remaps one code to another.
type Pair struct {
	From byte
	To   byte
}

// Map is a named remapping table. Pairs must be strictly ascending by From.
type Map struct {
	Name  string
	Pairs []Pair
}

// Remap translates code through the table, returning code itself when no
// pair matches.
func (m *Map) Remap(code byte) byte {
	i := sort.Search(len(m.Pairs), func(i int) bool {
		return m.Pairs[i].From >= code
	})
	if i < len(m.Pairs) && m.Pairs[i].From == code {
		return m.Pairs[i].To
	}
	return code
}

// sorted reports whether the table is strictly ascending by From, the
// precondition Remap's binary search relies on.
func (m *Map) sorted() bool {
	for i := 1; i < len(m.Pairs); i++ {
		if m.Pairs[i-1].From >= m.Pairs[i].From {
			return false
		}
	}
	return true
}

// Maps lists every built-in table.
func Maps() []*Map {
	return []*Map{Italian, NoLatin1}
}

// ByName returns the named table, or nil.
func ByName(name string) *Map {
	for _, m := range Maps() {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func init() {
	selftest.Register("keymap", run)
}

// run validates the static tables: sortedness (so binary search is sound)
// and a handful of spot remappings per table.
func run() {
	for _, m := range Maps() {
		selftest.Okf(m.sorted(), m.Name+" table sorted by From")
		selftest.Okf(len(m.Pairs) > 0, m.Name+" table non-empty")

		// Codes outside every table pass through.
		selftest.Okf(m.Remap('a') == 'a', m.Name+" passthrough")
		selftest.Okf(m.Remap(0x00) == 0x00, m.Name+" passthrough NUL")
	}

	selftest.Okf(Italian.Remap('&') == '/', "it remaps '&'")
	selftest.Okf(Italian.Remap('@') == '"', "it remaps '@'")
	selftest.Okf(Italian.Remap('~') == '|', "it remaps '~'")

	selftest.Okf(NoLatin1.Remap('+') == '`', "no-latin1 remaps '+'")
	selftest.Okf(NoLatin1.Remap(']') == '~', "no-latin1 remaps ']'")
	selftest.Okf(NoLatin1.Remap(0x1d) == 0x1e, "no-latin1 remaps 0x1d")
}
