package jsondata

import (
	"errors"
	"testing"
)

func TestFactoryCreate(t *testing.T) {
	c := Customers.Create()
	if c == nil {
		t.Fatal("Create returned nil")
	}
	empty, err := Unmarshal([]byte(`{}`), Customers)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equal(empty) {
		t.Errorf("fresh document %s is not empty", c)
	}
}

func TestFactoryCreateFromTree(t *testing.T) {
	src := mustBean(t, `{"name": "bob"}`)
	c := Customers.CreateFromTree(src.Tree())
	if got := c.Name(); got != "bob" {
		t.Errorf("got %q", got)
	}
	c.SetName("alice")
	if got := src.GetString("name"); got != "alice" {
		t.Error("tree not shared")
	}
}

func TestFactoryCreateFromTreeRejectsNonObject(t *testing.T) {
	defer func() {
		if _, ok := recover().(*TypeError); !ok {
			t.Fatal("want *TypeError")
		}
	}()
	tree, err := UnmarshalTree([]byte(`[1, 2]`))
	if err != nil {
		t.Fatal(err)
	}
	Customers.CreateFromTree(tree)
}

func TestFactoryConstructionFailures(t *testing.T) {
	tests := []struct {
		name    string
		factory Factory[*Customer]
	}{
		{name: "unbound recipe", factory: Factory[*Customer]{}},
		{name: "nil result", factory: NewFactory(func() *Customer { return nil })},
		{name: "panicking recipe", factory: NewFactory(func() *Customer {
			panic(errors.New("boom"))
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if _, ok := recover().(*ConstructError); !ok {
					t.Fatal("want *ConstructError")
				}
			}()
			tt.factory.Create()
		})
	}
}
