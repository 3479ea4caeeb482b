// Package encode renders plain trees as JSON text, compact by default,
// optionally indented and colored for terminals.
package encode

import (
	"io"
	"strconv"

	"github.com/hrytsenko/json-data/ir"
)

type encState struct {
	indent int
	depth  int
	colors *Colors
}

type EncodeOption func(*encState)

// EncodeIndent renders with n spaces of indentation per level; n <= 0
// keeps the compact form.
func EncodeIndent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// EncodeColors colors the output for terminals.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}

// Encode writes the rendering of node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *encState) error {
	if node == nil {
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	}
	switch node.Type {
	case ir.NullType:
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		return writeString(w, es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		return writeString(w, es.color(ir.NumberType, ValueColor, strconv.FormatInt(node.Int64, 10)))
	case ir.StringType:
		return writeString(w, es.color(ir.StringType, ValueColor, quote(node.String)))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	}
	return writeString(w, "null")
}

func encodeArray(node *ir.Node, w io.Writer, es *encState) error {
	if err := writeString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.newline(w); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Values) > 0 {
		if err := es.newline(w); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
}

func encodeObject(node *ir.Node, w io.Writer, es *encState) error {
	if err := writeString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.newline(w); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.ObjectType, FieldColor, quote(f))); err != nil {
			return err
		}
		sep := ":"
		if es.indent > 0 {
			sep = ": "
		}
		if err := writeString(w, es.color(ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Fields) > 0 {
		if err := es.newline(w); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
}

func (es *encState) newline(w io.Writer) error {
	if es.indent <= 0 {
		return nil
	}
	pad := make([]byte, 1+es.depth*es.indent)
	pad[0] = '\n'
	for i := 1; i < len(pad); i++ {
		pad[i] = ' '
	}
	_, err := w.Write(pad)
	return err
}

func (es *encState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.render(t, attr, s)
}

func quote(s string) string {
	return string(ir.AppendQuote(nil, s))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
