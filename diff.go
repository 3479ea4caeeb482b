package jsondata

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hrytsenko/json-data/encode"
	"github.com/hrytsenko/json-data/ir"
)

// Diff returns a line diff of the two documents' indented renderings,
// with removed lines prefixed "-" and added lines "+". Equal documents
// produce "".
func Diff(from, to Document) string {
	return DiffTrees(from.Tree(), to.Tree())
}

// DiffTrees is Diff over plain trees.
func DiffTrees(from, to *ir.Node) string {
	if ir.Equal(from, to) {
		return ""
	}
	diffCfg := diffpatch.New()
	fromText, toText := indented(from), indented(to)
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(fromText, toText)
	diffs := diffCfg.DiffCharsToLines(
		diffCfg.DiffMainRunes(fromRunes, toRunes, false), lines)

	buf := bytes.NewBuffer(nil)
	for i := range diffs {
		diff := &diffs[i]
		var prefix string
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range splitLines(diff.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

func indented(n *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeIndent(2)); err != nil {
		panic(err)
	}
	return buf.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
