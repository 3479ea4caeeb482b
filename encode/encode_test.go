package encode

import (
	"strings"
	"testing"

	"github.com/hrytsenko/json-data/ir"
	"github.com/hrytsenko/json-data/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "object", input: `{"b": 1, "a": [true, null]}`, want: `{"b":1,"a":[true,null]}`},
		{name: "empty object", input: `{}`, want: `{}`},
		{name: "empty array", input: `[]`, want: `[]`},
		{name: "string escapes", input: `{"s": "a\nb"}`, want: `{"s":"a\nb"}`},
		{name: "scalar", input: `-7`, want: `-7`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := Encode(mustParse(t, tt.input), &sb); err != nil {
				t.Fatal(err)
			}
			if got := sb.String(); got != tt.want+"\n" {
				t.Errorf("got %q, want %q", got, tt.want+"\n")
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	var sb strings.Builder
	n := mustParse(t, `{"a": {"b": [1, 2]}, "c": {}}`)
	if err := Encode(n, &sb, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": {
    "b": [
      1,
      2
    ]
  },
  "c": {}
}
`
	if got := sb.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeNilNode(t *testing.T) {
	var sb strings.Builder
	if err := Encode(nil, &sb); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != "null\n" {
		t.Errorf("got %q, want %q", got, "null\n")
	}
}

func TestMustString(t *testing.T) {
	n := mustParse(t, `{"a": 1}`)
	if got := MustString(n); got != `{"a":1}` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColorsRoundTrip(t *testing.T) {
	// Colored output must still parse once the escape codes are
	// stripped; simplest check is that the text between codes is the
	// same rendering.
	var plain, colored strings.Builder
	n := mustParse(t, `{"a": [1, "x", false]}`)
	if err := Encode(n, &plain); err != nil {
		t.Fatal(err)
	}
	if err := Encode(n, &colored, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	got := stripEscapes(colored.String())
	if got != plain.String() {
		t.Errorf("stripped colored output %q, want %q", got, plain.String())
	}
}

func stripEscapes(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
