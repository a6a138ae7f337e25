package observe

// Equal reports structural equivalence of two observations: same kinds,
// same value sets, same field sets. Field order, value order and absolute
// presence counts are ignored, which is what makes merge commutative up to
// Equal. Presence ratios survive merging, so required-ness is preserved
// even though raw counts are not compared.
func Equal(a, b Observation) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindScalar:
		x, y := a.AsScalar(), b.AsScalar()
		return x.MaybeString == y.MaybeString &&
			x.MaybeInt == y.MaybeInt &&
			x.MaybeFloat == y.MaybeFloat &&
			x.MaybeBool == y.MaybeBool &&
			x.MaybeNull == y.MaybeNull &&
			x.Strings.Equal(y.Strings) &&
			x.Ints.Equal(y.Ints) &&
			x.Floats.Equal(y.Floats) &&
			x.Bools.Equal(y.Bools)
	case KindObject:
		x, y := a.AsObject(), b.AsObject()
		if len(x.Fields) != len(y.Fields) {
			return false
		}
		for _, f := range x.Fields {
			g := y.Field(f.Key)
			if g == nil || !Equal(f.Value, g.Value) {
				return false
			}
		}
		return true
	case KindArray:
		return Equal(a.AsArray().Elem, b.AsArray().Elem)
	case KindUnion:
		x, y := a.AsUnion(), b.AsUnion()
		return Equal(x.O, y.O) && Equal(x.A, y.A) && Equal(x.V, y.V)
	}
	return false
}
