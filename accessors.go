package jsondata

import (
	"github.com/hrytsenko/json-data/ir"
)

// Generic accessors live at package level: Go methods cannot take type
// parameters, and these need the target document type.

// GetEntity materializes the object at path as a document built by f.
// The underlying tree is shared with src. Returns the zero E when
// absent.
func GetEntity[E Document](src Document, path string, f Factory[E]) E {
	var zero E
	m := src.entity().GetMap(path)
	if m == nil {
		return zero
	}
	return f.CreateFromTree(m)
}

// GetEntityOrDefault is GetEntity returning def when absent.
func GetEntityOrDefault[E Document](src Document, path string, f Factory[E], def E) E {
	m := src.entity().GetMap(path)
	if m == nil {
		return def
	}
	return f.CreateFromTree(m)
}

// GetEntities materializes the list at path as documents built by f,
// preserving positions. A null element in the source list stays a zero
// E in the output, it is not skipped. Returns nil when absent.
func GetEntities[E Document](src Document, path string, f Factory[E]) []E {
	list := src.entity().GetList(path)
	if list == nil {
		return nil
	}
	res := make([]E, len(list.Values))
	for i, v := range list.Values {
		if v.Type == ir.NullType {
			continue
		}
		res[i] = f.CreateFromTree(v)
	}
	return res
}

// PutEntities writes the list of each document's plain tree at path.
// Nil documents become null elements.
func PutEntities[E Document](dst Document, path string, subs []E) {
	list := ir.NewArray()
	for _, sub := range subs {
		if isNil(sub) {
			list.Append(ir.Null())
			continue
		}
		list.Append(sub.Tree())
	}
	dst.entity().PutList(path, list)
}

// As exports src's tree into a new document built by f. The tree is
// shared between the two documents.
func As[E Document](src Document, f Factory[E]) E {
	return f.CreateFromTree(src.Tree())
}
