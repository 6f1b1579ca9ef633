// Package selection tracks which entities a user picked in a form and the
// free-text quantity typed next to each of them.
//
// The same helpers back both "pick ingredients for a new recipe" and
// "pick recipes to add to the grocery". A State is treated as immutable:
// every change returns a new map, and a change that does nothing returns the
// very same map so callers can detect it.
package selection

// State maps a selected id to its quantity as typed. Presence means selected;
// an empty quantity means selected but not filled in yet.
type State[K comparable] map[K]string

// New returns an empty selection.
func New[K comparable]() State[K] {
	return State[K]{}
}

func (s State[K]) clone() State[K] {
	next := make(State[K], len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	return next
}

// Toggle unselects id when it is selected, dropping its quantity, or selects
// it with an empty quantity otherwise. It always returns a new map.
func Toggle[K comparable](s State[K], id K) State[K] {
	next := s.clone()
	if _, ok := next[id]; ok {
		delete(next, id)
		return next
	}
	next[id] = ""
	return next
}

// SetQty replaces the quantity of a selected id and reports true. When id is
// not selected it returns s itself and false.
func SetQty[K comparable](s State[K], id K, qty string) (State[K], bool) {
	if _, ok := s[id]; !ok {
		return s, false
	}
	next := s.clone()
	next[id] = qty
	return next, true
}

// SelectedIDs returns every selected id in no particular order.
func SelectedIDs[K comparable](s State[K]) []K {
	ids := make([]K, 0, len(s))
	for k := range s {
		ids = append(ids, k)
	}
	return ids
}
