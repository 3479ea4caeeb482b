package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// ToAny converts a tree into plain Go values: objects become
// map[string]any (key order is lost), arrays []any, numbers int64.
func ToAny(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ObjectType:
		res := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			res[f] = ToAny(n.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case StringType:
		return n.String
	case NumberType:
		return n.Int64
	case BoolType:
		return n.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values into a tree. Map keys are sorted to
// make the result deterministic; build from Pairs when order matters.
// Floats must be integral, anything fractional is an error.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("fractional number %v is not supported", x)
		}
		return FromInt(int64(x)), nil
	case []*Node:
		return FromSlice(x), nil
	case []any:
		res := NewArray()
		for _, e := range x {
			ne, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(ne)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			ne, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, ne)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
