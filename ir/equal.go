package ir

// Equal reports deep structural equality. Object entries are compared
// by key regardless of insertion order, array elements in order, and
// explicit null entries count as entries.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		// Keys are unique, so equal sizes plus a one-way check
		// cover both directions.
		for i, f := range a.Fields {
			bv := b.Get(f)
			if bv == nil || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case StringType:
		return a.String == b.String
	case NumberType:
		return a.Int64 == b.Int64
	case BoolType:
		return a.Bool == b.Bool
	case NullType:
		return true
	}
	return false
}
