package ir

// Node is one node of a plain tree. Exactly one of the value fields is
// meaningful, selected by Type:
//
//   - ObjectType: Fields holds the keys in insertion order, Values the
//     corresponding child nodes.
//   - ArrayType: Values holds the elements in order.
//   - StringType: String.
//   - NumberType: Int64. Numbers are 64-bit integers only; fractional
//     values are outside the supported contract and are rejected by
//     the parser rather than truncated.
//   - BoolType: Bool.
//   - NullType: no value.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Int64  int64
	Bool   bool
}

// Null returns a new null node.
func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// NewObject returns a new empty object node.
func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// NewArray returns a new empty array node.
func NewArray() *Node {
	return &Node{Type: ArrayType}
}

// FromSlice returns an array node holding the given elements. Nil
// elements become null nodes.
func FromSlice(elems []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(elems)),
	}
	for i, e := range elems {
		if e == nil {
			e = Null()
		}
		res.Values[i] = e
	}
	return res
}

// Pair is one object entry, used to build objects with a fixed key
// order.
type Pair struct {
	Field string
	Value *Node
}

// FromPairs returns an object node with the entries in the given
// order. A repeated key keeps its first position and the last value.
func FromPairs(pairs ...Pair) *Node {
	res := NewObject()
	for _, p := range pairs {
		v := p.Value
		if v == nil {
			v = Null()
		}
		res.Set(p.Field, v)
	}
	return res
}

// Get returns the value stored under field, or nil when the node is
// not an object or the field is missing.
func (n *Node) Get(field string) *Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	for i, f := range n.Fields {
		if f == field {
			return n.Values[i]
		}
	}
	return nil
}

// Set associates field with v. An existing field keeps its position, a
// new field is appended. It panics when called on a non-object.
func (n *Node) Set(field string, v *Node) *Node {
	if n.Type != ObjectType {
		panic("ir: Set on " + n.Type.String() + " node")
	}
	if v == nil {
		v = Null()
	}
	for i, f := range n.Fields {
		if f == field {
			n.Values[i] = v
			return n
		}
	}
	n.Fields = append(n.Fields, field)
	n.Values = append(n.Values, v)
	return n
}

// Delete removes field from an object node and reports whether it was
// present. Deleting from a non-object or an absent field is a no-op.
func (n *Node) Delete(field string) bool {
	if n == nil || n.Type != ObjectType {
		return false
	}
	for i, f := range n.Fields {
		if f != field {
			continue
		}
		n.Fields = append(n.Fields[:i], n.Fields[i+1:]...)
		n.Values = append(n.Values[:i], n.Values[i+1:]...)
		return true
	}
	return false
}

// Len returns the number of entries of an object or elements of an
// array, and 0 for scalars.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Type {
	case ObjectType:
		return len(n.Fields)
	case ArrayType:
		return len(n.Values)
	}
	return 0
}

// Range iterates the entries of an object node in insertion order
// until fn returns false.
func (n *Node) Range(fn func(field string, v *Node) bool) {
	if n == nil || n.Type != ObjectType {
		return
	}
	for i, f := range n.Fields {
		if !fn(f, n.Values[i]) {
			return
		}
	}
}

// Append adds elements to an array node. It panics when called on a
// non-array. Nil elements become null nodes.
func (n *Node) Append(elems ...*Node) *Node {
	if n.Type != ArrayType {
		panic("ir: Append on " + n.Type.String() + " node")
	}
	for _, e := range elems {
		if e == nil {
			e = Null()
		}
		n.Values = append(n.Values, e)
	}
	return n
}

// Clone returns a deep copy sharing no storage with n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Type:   n.Type,
		String: n.String,
		Int64:  n.Int64,
		Bool:   n.Bool,
	}
	if n.Fields != nil {
		res.Fields = make([]string, len(n.Fields))
		copy(res.Fields, n.Fields)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}
