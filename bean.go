package jsondata

// Bean is a generic document with no typed accessors of its own.
//
// Use beans as temporary documents with a limited scope and a short
// lifetime; otherwise declare a specific document type.
type Bean struct {
	Entity
}

// NewBean creates an empty bean.
func NewBean() *Bean {
	return &Bean{}
}

// Beans produces generic beans; handy wherever a factory is required
// and no specific document type exists.
var Beans = NewFactory(NewBean)
