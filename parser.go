package jsondata

import (
	"errors"

	"github.com/hrytsenko/json-data/ir"
	"github.com/hrytsenko/json-data/parse"
)

// UnmarshalTree decodes data into a plain tree.
func UnmarshalTree(data []byte) (*ir.Node, error) {
	t, err := parse.Parse(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return t, nil
}

// Unmarshal decodes an object document and materializes it through f.
func Unmarshal[E Document](data []byte, f Factory[E]) (E, error) {
	var zero E
	t, err := parse.Parse(data)
	if err != nil {
		return zero, &ParseError{Err: err}
	}
	if t.Type != ir.ObjectType {
		return zero, &ParseError{Err: errors.New("expected an object")}
	}
	return f.CreateFromTree(t), nil
}

// UnmarshalList decodes an array of object documents through f. Null
// elements stay zero at their positions.
func UnmarshalList[E Document](data []byte, f Factory[E]) ([]E, error) {
	t, err := parse.Parse(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if t.Type != ir.ArrayType {
		return nil, &ParseError{Err: errors.New("expected an array")}
	}
	res := make([]E, len(t.Values))
	for i, v := range t.Values {
		if v.Type == ir.NullType {
			continue
		}
		if v.Type != ir.ObjectType {
			return nil, &ParseError{Err: errors.New("expected an array of objects")}
		}
		res[i] = f.CreateFromTree(v)
	}
	return res, nil
}

// Marshal returns the canonical compact JSON text of doc.
func Marshal(doc Document) []byte {
	return ir.AppendJSON(nil, doc.Tree())
}

// MarshalList returns the canonical compact JSON text of the list of
// documents' trees. Nil documents render as null.
func MarshalList[E Document](docs []E) []byte {
	return ir.AppendJSON(nil, EntitiesToTree(docs))
}

// TreeToEntity materializes tree through f; the tree is shared.
func TreeToEntity[E Document](tree *ir.Node, f Factory[E]) E {
	return f.CreateFromTree(tree)
}

// EntitiesToTree returns an array tree over the documents' roots,
// mapping nil documents to null elements.
func EntitiesToTree[E Document](docs []E) *ir.Node {
	list := ir.NewArray()
	for _, doc := range docs {
		if isNil(doc) {
			list.Append(ir.Null())
			continue
		}
		list.Append(doc.Tree())
	}
	return list
}
