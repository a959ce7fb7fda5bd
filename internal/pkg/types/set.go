package types

// Set is a generic hash set backed by map[T]struct{}.
//
// Methods like Add and Delete modify the set in place. A Set is not safe for
// concurrent mutation; callers that share one must guard it.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Contains reports whether v is a member of the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Intersect returns the elements of values that are members of s, in the
// order they appear in values. Duplicates in values are reported once.
func (s Set[T]) Intersect(values []T) []T {
	matched := make([]T, 0)
	seen := NewSet[T]()
	for _, v := range values {
		if s.Contains(v) && !seen.Contains(v) {
			seen.Add(v)
			matched = append(matched, v)
		}
	}
	return matched
}
