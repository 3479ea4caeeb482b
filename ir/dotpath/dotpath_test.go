package dotpath

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "single segment", input: "a", want: []string{"a"}},
		{name: "nested", input: "a.b.c", want: []string{"a", "b", "c"}},
		{name: "empty path", input: "", wantErr: true},
		{name: "leading dot", input: ".a", wantErr: true},
		{name: "trailing dot", input: "a.", wantErr: true},
		{name: "doubled dot", input: "a..b", wantErr: true},
		{name: "odd key characters", input: "a-b.c d", want: []string{"a-b", "c d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.input)
				}
				if _, ok := err.(*SyntaxError); !ok {
					t.Fatalf("Parse(%q) error is %T, want *SyntaxError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			var segs []string
			for i := 0; i < p.Len(); i++ {
				segs = append(segs, p.Seg(i))
			}
			if !reflect.DeepEqual(segs, tt.want) {
				t.Errorf("got %v, want %v", segs, tt.want)
			}
			if p.String() != tt.input {
				t.Errorf("String = %q, want %q", p.String(), tt.input)
			}
		})
	}
}

func TestParent(t *testing.T) {
	p := MustParse("a.b.c")
	parent := p.Parent()
	if parent.String() != "a.b" {
		t.Errorf("Parent = %q, want %q", parent.String(), "a.b")
	}
	if got := parent.Leaf(); got != "b" {
		t.Errorf("Leaf = %q, want %q", got, "b")
	}
	root := MustParse("a").Parent()
	if !root.IsRoot() {
		t.Error("parent of single segment path is not root")
	}
	if root.Leaf() != "" {
		t.Errorf("root Leaf = %q, want empty", root.Leaf())
	}
}

func TestParseCaches(t *testing.T) {
	a := MustParse("x.y")
	b := MustParse("x.y")
	if !reflect.DeepEqual(a, b) {
		t.Error("cached parse differs from original")
	}
}
