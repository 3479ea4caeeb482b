package encode

import (
	"bytes"
	"strings"

	"github.com/hrytsenko/json-data/ir"
)

// MustString returns the compact rendering of node.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
