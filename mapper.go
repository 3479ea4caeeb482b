package jsondata

import (
	"errors"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/hrytsenko/json-data/debug"
	"github.com/hrytsenko/json-data/encode"
	"github.com/hrytsenko/json-data/ir"
	"github.com/hrytsenko/json-data/parse"
)

// Mapper transforms documents with a previously compiled
// transformation spec and materializes the result through a factory.
// The spec is an RFC 6902 JSON Patch: an ordered sequence of
// operations applied as one multi-step transformation.
type Mapper[E Document] struct {
	patch   jsonpatch.Patch
	factory Factory[E]
}

// NewMapper compiles spec. A malformed spec is a *ConfigError.
func NewMapper[E Document](spec []byte, f Factory[E]) (*Mapper[E], error) {
	patch, err := jsonpatch.DecodePatch(spec)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return &Mapper[E]{patch: patch, factory: f}, nil
}

// Map transforms one document.
func (m *Mapper[E]) Map(doc Document) (E, error) {
	return m.transform(doc.Tree())
}

// MapList transforms a list of documents into one result document.
// The spec must replace the array root with an object; a result that
// is not an object is a *TransformError.
func (m *Mapper[E]) MapList(docs []Document) (E, error) {
	return m.transform(EntitiesToTree(docs))
}

func (m *Mapper[E]) transform(input *ir.Node) (E, error) {
	var zero E
	if input == nil {
		return zero, &TransformError{Err: errors.New("input is undefined")}
	}
	in := ir.AppendJSON(nil, input)
	if debug.Transform() {
		debug.Logf("transform input %s\n", string(in))
	}
	out, err := m.patch.Apply(in)
	if err != nil {
		return zero, &TransformError{Err: err}
	}
	tree, err := parse.Parse(out)
	if err != nil {
		return zero, &TransformError{Err: err}
	}
	if tree == nil || tree.Type != ir.ObjectType {
		return zero, &TransformError{Err: errors.New("output is undefined (transformation must supply a default)")}
	}
	if debug.Transform() {
		debug.Logf("transform output %s\n", encode.MustString(tree))
	}
	return m.factory.CreateFromTree(tree), nil
}
