package observe

// ValueSet is an insertion-ordered set of distinct scalar values. Order is
// first-seen; equality ignores order so merge stays commutative.
type ValueSet[T comparable] struct {
	order []T
	index map[T]struct{}
}

func NewValueSet[T comparable](vs ...T) *ValueSet[T] {
	s := &ValueSet[T]{index: make(map[T]struct{})}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

func (s *ValueSet[T]) Add(v T) {
	if _, in := s.index[v]; in {
		return
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *ValueSet[T]) Len() int {
	return len(s.order)
}

func (s *ValueSet[T]) Has(v T) bool {
	_, in := s.index[v]
	return in
}

// Values returns the distinct values in first-seen order. The slice is a
// copy.
func (s *ValueSet[T]) Values() []T {
	vs := make([]T, len(s.order))
	copy(vs, s.order)
	return vs
}

// Union returns a new set holding the values of s followed by the values of
// o that s did not already contain.
func (s *ValueSet[T]) Union(o *ValueSet[T]) *ValueSet[T] {
	r := NewValueSet[T](s.order...)
	for _, v := range o.order {
		r.Add(v)
	}
	return r
}

// Equal reports set equality, ignoring insertion order.
func (s *ValueSet[T]) Equal(o *ValueSet[T]) bool {
	if len(s.order) != len(o.order) {
		return false
	}
	for _, v := range s.order {
		if !o.Has(v) {
			return false
		}
	}
	return true
}
