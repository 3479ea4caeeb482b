package ir

import (
	"testing"
)

func TestObjectSetKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", FromInt(1))
	obj.Set("b", FromInt(2))
	obj.Set("a", FromInt(3))

	if got, want := len(obj.Fields), 2; got != want {
		t.Fatalf("got %d fields, want %d", got, want)
	}
	if obj.Fields[0] != "a" || obj.Fields[1] != "b" {
		t.Fatalf("got fields %v, want [a b]", obj.Fields)
	}
	if got := obj.Get("a").Int64; got != 3 {
		t.Errorf("got a=%d, want 3", got)
	}
}

func TestObjectDelete(t *testing.T) {
	obj := FromPairs(
		Pair{Field: "a", Value: FromInt(1)},
		Pair{Field: "b", Value: FromInt(2)},
		Pair{Field: "c", Value: FromInt(3)},
	)
	if !obj.Delete("b") {
		t.Fatal("Delete(b) = false, want true")
	}
	if obj.Delete("b") {
		t.Fatal("second Delete(b) = true, want false")
	}
	if obj.Len() != 2 || obj.Fields[0] != "a" || obj.Fields[1] != "c" {
		t.Errorf("got fields %v, want [a c]", obj.Fields)
	}
}

func TestGetOnNonObject(t *testing.T) {
	tests := []struct {
		name string
		node *Node
	}{
		{name: "nil", node: nil},
		{name: "string", node: FromString("x")},
		{name: "array", node: NewArray()},
		{name: "null", node: Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Get("a"); got != nil {
				t.Errorf("Get = %v, want nil", got)
			}
		})
	}
}

func TestFromPairsDuplicateKey(t *testing.T) {
	obj := FromPairs(
		Pair{Field: "a", Value: FromInt(1)},
		Pair{Field: "b", Value: FromInt(2)},
		Pair{Field: "a", Value: FromInt(3)},
	)
	if obj.Len() != 2 {
		t.Fatalf("got %d entries, want 2", obj.Len())
	}
	if obj.Fields[0] != "a" {
		t.Errorf("duplicate key lost its first position: %v", obj.Fields)
	}
	if got := obj.Get("a").Int64; got != 3 {
		t.Errorf("got a=%d, want last value 3", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromPairs(
		Pair{Field: "nested", Value: FromPairs(
			Pair{Field: "n", Value: FromInt(1)},
		)},
		Pair{Field: "list", Value: FromSlice([]*Node{FromString("x")})},
	)
	clone := orig.Clone()
	if !Equal(orig, clone) {
		t.Fatal("clone not equal to original")
	}
	clone.Get("nested").Set("n", FromInt(2))
	clone.Get("list").Append(FromString("y"))
	if orig.Get("nested").Get("n").Int64 != 1 {
		t.Error("mutating clone changed original nested object")
	}
	if orig.Get("list").Len() != 1 {
		t.Error("mutating clone changed original array")
	}
}

func TestFromSliceNilElements(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1), nil})
	if arr.Values[1].Type != NullType {
		t.Errorf("nil element became %s, want null", arr.Values[1].Type)
	}
}
