package jsondata

import (
	"github.com/hrytsenko/json-data/debug"
	"github.com/hrytsenko/json-data/encode"
	"github.com/hrytsenko/json-data/ir"
	"github.com/hrytsenko/json-data/ir/dotpath"
)

// Entity is the base of every document type. Embed it in a struct and
// expose typed accessors; the zero value is an empty document.
//
// Entities must remain constructible with zero arguments so that
// factories and the generic accessors can produce them; use static
// helper functions, not custom constructors, for initialization
// behavior.
type Entity struct {
	root *ir.Node
}

// Document is the interface satisfied by every type embedding Entity.
type Document interface {
	// Tree returns the live plain tree root; mutating the tree
	// mutates the document and vice versa.
	Tree() *ir.Node

	entity() *Entity
}

func (e *Entity) entity() *Entity {
	return e
}

// Tree returns the live plain tree root, allocating an empty object
// root on first use.
func (e *Entity) Tree() *ir.Node {
	if e.root == nil {
		e.root = ir.NewObject()
	}
	return e.root
}

// attach rebinds the entity to t without copying. The root of a
// document is always an object.
func (e *Entity) attach(t *ir.Node) {
	if t == nil || t.Type != ir.ObjectType {
		got := ir.InvalidType
		if t != nil {
			got = t.Type
		}
		panic(&TypeError{Want: ir.ObjectType, Got: got})
	}
	e.root = t
}

func mustPath(path string) dotpath.Path {
	p, err := dotpath.Parse(path)
	if err != nil {
		panic(&PathError{Path: path, Err: err})
	}
	return p
}

// resolve walks the path and returns the addressed node, or nil when
// any segment is missing, blocked by a non-object, or the leaf is an
// explicit null.
func (e *Entity) resolve(path string) *ir.Node {
	p := mustPath(path)
	n := e.Tree()
	for i := 0; i < p.Len(); i++ {
		n = n.Get(p.Seg(i))
		if n == nil {
			return nil
		}
	}
	if n.Type == ir.NullType {
		return nil
	}
	return n
}

// Contains reports whether path holds a non-null value. A key present
// with an explicit null counts as absent.
func (e *Entity) Contains(path string) bool {
	return e.resolve(path) != nil
}

// GetObject returns the live node at path, or nil when absent.
func (e *Entity) GetObject(path string) *ir.Node {
	return e.resolve(path)
}

// PutObject writes v at path, creating missing or null ancestor
// containers along the way. Writing through an existing non-object
// node panics with *TypeError. A nil v stores an explicit null, which
// subsequent Contains reports as absent.
func (e *Entity) PutObject(path string, v *ir.Node) *Entity {
	p := mustPath(path)
	if v == nil {
		v = ir.Null()
	}
	if debug.Path() {
		debug.Logf("put %s = %s\n", path, encode.MustString(v))
	}
	e.ensure(p.Parent()).Set(p.Leaf(), v)
	return e
}

// ensure returns the live object at parent, creating missing or null
// containers along the way.
func (e *Entity) ensure(parent dotpath.Path) *ir.Node {
	n := e.Tree()
	if parent.IsRoot() {
		return n
	}
	for i := 0; i < parent.Len(); i++ {
		seg := parent.Seg(i)
		child := n.Get(seg)
		if child == nil || child.Type == ir.NullType {
			child = ir.NewObject()
			n.Set(seg, child)
		}
		if child.Type != ir.ObjectType {
			panic(&TypeError{Path: prefix(parent, i), Want: ir.ObjectType, Got: child.Type})
		}
		n = child
	}
	return n
}

// Remove deletes the node at path. Removing an absent path is a no-op.
func (e *Entity) Remove(path string) *Entity {
	p := mustPath(path)
	n := e.Tree()
	parent := p.Parent()
	for i := 0; i < parent.Len(); i++ {
		n = n.Get(parent.Seg(i))
		if n == nil || n.Type != ir.ObjectType {
			return e
		}
	}
	n.Delete(p.Leaf())
	return e
}

func prefix(p dotpath.Path, i int) string {
	res := p.Seg(0)
	for k := 1; k <= i; k++ {
		res += "." + p.Seg(k)
	}
	return res
}

// narrow returns the node at path narrowed to want: nil when absent,
// *TypeError panic when present with another kind.
func (e *Entity) narrow(path string, want ir.Type) *ir.Node {
	n := e.resolve(path)
	if n == nil {
		return nil
	}
	if n.Type != want {
		panic(&TypeError{Path: path, Want: want, Got: n.Type})
	}
	return n
}

// GetString returns the string at path, or "" when absent.
func (e *Entity) GetString(path string) string {
	n := e.narrow(path, ir.StringType)
	if n == nil {
		return ""
	}
	return n.String
}

// GetStringOrDefault returns the string at path, or def when absent.
func (e *Entity) GetStringOrDefault(path, def string) string {
	n := e.narrow(path, ir.StringType)
	if n == nil {
		return def
	}
	return n.String
}

func (e *Entity) PutString(path, v string) *Entity {
	return e.PutObject(path, ir.FromString(v))
}

// GetInt returns the 64-bit integer at path, or 0 when absent.
func (e *Entity) GetInt(path string) int64 {
	n := e.narrow(path, ir.NumberType)
	if n == nil {
		return 0
	}
	return n.Int64
}

// GetIntOrDefault returns the integer at path, or def when absent.
func (e *Entity) GetIntOrDefault(path string, def int64) int64 {
	n := e.narrow(path, ir.NumberType)
	if n == nil {
		return def
	}
	return n.Int64
}

func (e *Entity) PutInt(path string, v int64) *Entity {
	return e.PutObject(path, ir.FromInt(v))
}

// GetBool returns the bool at path, or false when absent.
func (e *Entity) GetBool(path string) bool {
	n := e.narrow(path, ir.BoolType)
	if n == nil {
		return false
	}
	return n.Bool
}

// GetBoolOrDefault returns the bool at path, or def when absent.
func (e *Entity) GetBoolOrDefault(path string, def bool) bool {
	n := e.narrow(path, ir.BoolType)
	if n == nil {
		return def
	}
	return n.Bool
}

func (e *Entity) PutBool(path string, v bool) *Entity {
	return e.PutObject(path, ir.FromBool(v))
}

// GetMap returns the live object node at path, or nil when absent.
func (e *Entity) GetMap(path string) *ir.Node {
	return e.narrow(path, ir.ObjectType)
}

// PutMap writes an object node at path; a nil obj stores an explicit
// null.
func (e *Entity) PutMap(path string, obj *ir.Node) *Entity {
	if obj != nil && obj.Type != ir.ObjectType {
		panic(&TypeError{Path: path, Want: ir.ObjectType, Got: obj.Type})
	}
	return e.PutObject(path, obj)
}

// MergeMap shallow-merges the top-level entries of obj into the root,
// overwriting existing keys wholesale. Nested structures are replaced,
// not combined.
func (e *Entity) MergeMap(obj *ir.Node) *Entity {
	if obj == nil {
		return e
	}
	if obj.Type != ir.ObjectType {
		panic(&TypeError{Want: ir.ObjectType, Got: obj.Type})
	}
	root := e.Tree()
	obj.Range(func(field string, v *ir.Node) bool {
		root.Set(field, v)
		return true
	})
	return e
}

// GetList returns the live array node at path, or nil when absent.
func (e *Entity) GetList(path string) *ir.Node {
	return e.narrow(path, ir.ArrayType)
}

// PutList writes an array node at path; a nil list stores an explicit
// null.
func (e *Entity) PutList(path string, list *ir.Node) *Entity {
	if list != nil && list.Type != ir.ArrayType {
		panic(&TypeError{Path: path, Want: ir.ArrayType, Got: list.Type})
	}
	return e.PutObject(path, list)
}

// PutEntity writes sub's plain tree at path. The tree is shared, not
// copied.
func (e *Entity) PutEntity(path string, sub Document) *Entity {
	if sub == nil {
		return e.PutObject(path, nil)
	}
	return e.PutObject(path, sub.Tree())
}

// MergeEntity shallow-merges sub's top-level keys into the root,
// overwriting conflicting keys with the incoming values.
func (e *Entity) MergeEntity(sub Document) *Entity {
	if sub == nil {
		return e
	}
	return e.MergeMap(sub.Tree())
}

// Equal reports deep structural equality of the two documents' trees.
// Key order does not matter, array order does. A document is never
// equal to a bare tree with the same content; compare trees with
// ir.Equal for that.
func (e *Entity) Equal(other Document) bool {
	if other == nil {
		return false
	}
	return ir.Equal(e.Tree(), other.Tree())
}

// Hash returns a hash of the tree content, consistent with Equal.
func (e *Entity) Hash() uint64 {
	return e.Tree().Hash()
}

// String returns the canonical compact JSON text of the tree.
func (e *Entity) String() string {
	return encode.MustString(e.Tree())
}
