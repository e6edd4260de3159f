package model

import "slices"

// FilterAll is the catch-all filter label. It is never a valid invoice
// status, only a member of a FilterSet.
const FilterAll Status = "All"

// FilterSet is the ordered set of status labels selected for display.
// A FilterSet is never empty: the zero value is not valid, use
// DefaultFilters.
type FilterSet []Status

// DefaultFilters returns the catch-all filter set.
func DefaultFilters() FilterSet {
	return FilterSet{FilterAll}
}

// Contains reports whether s is a member of the set.
func (f FilterSet) Contains(s Status) bool {
	return slices.Contains(f, s)
}

// Matches reports whether an invoice with the given status passes the set.
func (f FilterSet) Matches(s Status) bool {
	return f.Contains(FilterAll) || f.Contains(s)
}

// Toggle returns the set with s flipped.
//
// Selecting All clears every other selection. Selecting a specific status
// removes All, then adds or removes the status. De-selecting the last
// specific status reverts to the catch-all set, so the result is never
// empty.
func (f FilterSet) Toggle(s Status) FilterSet {
	if s == FilterAll {
		return DefaultFilters()
	}

	next := make(FilterSet, 0, len(f)+1)
	for _, cur := range f {
		if cur == FilterAll || cur == s {
			continue
		}
		next = append(next, cur)
	}
	if !f.Contains(s) {
		next = append(next, s)
	}

	if len(next) == 0 {
		return DefaultFilters()
	}
	return next
}

// Clone returns an independent copy of the set.
func (f FilterSet) Clone() FilterSet {
	return slices.Clone(f)
}
