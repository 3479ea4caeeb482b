package jsondata

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hrytsenko/json-data/ir"
)

// Factory binds a document type to a zero-argument construction
// recipe. It is stateless and reusable; it owns no document instances,
// only the recipe:
//
//	var customers = jsondata.NewFactory(NewCustomer)
//
// Construction failures panic with *ConstructError carrying the
// underlying cause.
type Factory[E Document] struct {
	fn func() E
}

// NewFactory binds fn as the construction recipe.
func NewFactory[E Document](fn func() E) Factory[E] {
	return Factory[E]{fn: fn}
}

// Create produces a new default (empty) instance.
func (f Factory[E]) Create() E {
	if f.fn == nil {
		panic(&ConstructError{Err: errors.New("no constructor bound")})
	}
	e := f.construct()
	if isNil(e) {
		panic(&ConstructError{Err: errors.New("constructor returned nil")})
	}
	return e
}

// CreateFromTree produces an instance attached to tree. The tree is
// shared, not copied, and must be an object.
func (f Factory[E]) CreateFromTree(tree *ir.Node) E {
	e := f.Create()
	e.entity().attach(tree)
	return e
}

func (f Factory[E]) construct() (e E) {
	defer func() {
		if r := recover(); r != nil {
			panic(&ConstructError{Err: asError(r)})
		}
	}()
	return f.fn()
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}

// isNil reports whether d wraps a nil pointer; documents are pointer
// types, so a typed nil would panic on first use.
func isNil(d Document) bool {
	if d == nil {
		return true
	}
	rv := reflect.ValueOf(d)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
