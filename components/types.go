// SPDX-License-Identifier: MIT

package components

// Component is one block of a partition.
type Component struct {
	// ID is the component's position in Result.Components.
	ID int

	// Members lists node ids in insertion order.
	Members []string

	// Size equals len(Members).
	Size int
}

// Result is an exhaustive partition of a graph's nodes.
type Result struct {
	Components []Component

	// Membership maps every node id to its component ID.
	Membership map[string]int
}

// Count returns the number of components.
func (r *Result) Count() int { return len(r.Components) }

// Largest returns the component with the most members. Ties go to the lower
// ID. It reports false for an empty result.
func Largest(r *Result) (Component, bool) {
	if r == nil || len(r.Components) == 0 {
		return Component{}, false
	}
	best := r.Components[0]
	for _, c := range r.Components[1:] {
		if c.Size > best.Size {
			best = c
		}
	}
	return best, true
}

// Singletons counts components with exactly one member.
func (r *Result) Singletons() int {
	n := 0
	for _, c := range r.Components {
		if c.Size == 1 {
			n++
		}
	}
	return n
}
