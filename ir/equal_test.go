package ir

import (
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{
			name: "key order does not matter",
			a: FromPairs(
				Pair{Field: "a", Value: FromInt(1)},
				Pair{Field: "b", Value: FromInt(2)},
			),
			b: FromPairs(
				Pair{Field: "b", Value: FromInt(2)},
				Pair{Field: "a", Value: FromInt(1)},
			),
			want: true,
		},
		{
			name: "array order matters",
			a:    FromSlice([]*Node{FromInt(1), FromInt(2)}),
			b:    FromSlice([]*Node{FromInt(2), FromInt(1)}),
			want: false,
		},
		{
			name: "explicit null entry counts",
			a:    FromPairs(Pair{Field: "a", Value: Null()}),
			b:    NewObject(),
			want: false,
		},
		{
			name: "different values",
			a:    FromPairs(Pair{Field: "a", Value: FromInt(1)}),
			b:    FromPairs(Pair{Field: "a", Value: FromInt(2)}),
			want: false,
		},
		{
			name: "different types",
			a:    FromString("1"),
			b:    FromInt(1),
			want: false,
		},
		{
			name: "nested",
			a: FromPairs(Pair{Field: "a", Value: FromPairs(
				Pair{Field: "x", Value: FromBool(true)},
				Pair{Field: "y", Value: FromString("s")},
			)}),
			b: FromPairs(Pair{Field: "a", Value: FromPairs(
				Pair{Field: "y", Value: FromString("s")},
				Pair{Field: "x", Value: FromBool(true)},
			)}),
			want: true,
		},
		{
			name: "nulls equal",
			a:    Null(),
			b:    Null(),
			want: true,
		},
		{
			name: "nil never equal",
			a:    nil,
			b:    NewObject(),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := FromPairs(
		Pair{Field: "a", Value: FromInt(1)},
		Pair{Field: "b", Value: FromSlice([]*Node{FromString("x"), Null()})},
	)
	b := FromPairs(
		Pair{Field: "b", Value: FromSlice([]*Node{FromString("x"), Null()})},
		Pair{Field: "a", Value: FromInt(1)},
	)
	if a.Hash() != b.Hash() {
		t.Error("equal trees with different key order hash differently")
	}
	c := FromPairs(Pair{Field: "a", Value: FromInt(2)})
	if a.Hash() == c.Hash() {
		t.Error("different trees share a hash")
	}
}

func TestHashDistinguishesScalarKinds(t *testing.T) {
	if FromString("true").Hash() == FromBool(true).Hash() {
		t.Error(`"true" and true hash alike`)
	}
	if FromInt(0).Hash() == Null().Hash() {
		t.Error("0 and null hash alike")
	}
}
