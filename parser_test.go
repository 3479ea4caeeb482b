package jsondata

import (
	"errors"
	"testing"

	"github.com/hrytsenko/json-data/ir"
)

func TestUnmarshal(t *testing.T) {
	c, err := Unmarshal([]byte(`{'name': 'bob'}`), Customers)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Name(); got != "bob" {
		t.Errorf("got %q", got)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed", input: `{"name":`},
		{name: "non object root", input: `[1]`},
		{name: "fractional", input: `{"n": 1.5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.input), Customers)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
		})
	}
}

func TestUnmarshalList(t *testing.T) {
	got, err := UnmarshalList([]byte(`[{"name": "bob"}, null]`), Customers)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Name() != "bob" || got[1] != nil {
		t.Errorf("got %v", got)
	}

	if _, err := UnmarshalList([]byte(`[1]`), Customers); err == nil {
		t.Error("scalar elements accepted")
	}
	if _, err := UnmarshalList([]byte(`{}`), Customers); err == nil {
		t.Error("object root accepted")
	}
}

func TestMarshal(t *testing.T) {
	c := Customers.Create().SetName("bob")
	if got := string(Marshal(c)); got != `{"name":"bob"}` {
		t.Errorf("got %s", got)
	}
}

func TestMarshalList(t *testing.T) {
	docs := []*Customer{NewCustomer().SetName("bob"), nil}
	if got := string(MarshalList(docs)); got != `[{"name":"bob"},null]` {
		t.Errorf("got %s", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	src := `{"a":{"b":[1,null,"x"]},"c":true}`
	b, err := Unmarshal([]byte(src), Beans)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(Marshal(b)); got != src {
		t.Errorf("got %s, want %s", got, src)
	}
}

func TestTreeConversions(t *testing.T) {
	tree, err := UnmarshalTree([]byte(`{"name": "bob"}`))
	if err != nil {
		t.Fatal(err)
	}
	c := TreeToEntity(tree, Customers)
	if got := c.Name(); got != "bob" {
		t.Errorf("got %q", got)
	}

	list := EntitiesToTree([]*Customer{c, nil})
	if got := string(ir.AppendJSON(nil, list)); got != `[{"name":"bob"},null]` {
		t.Errorf("got %s", got)
	}
}
