package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendJSON(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "object keeps insertion order",
			node: FromPairs(
				Pair{Field: "b", Value: FromInt(2)},
				Pair{Field: "a", Value: FromInt(1)},
			),
			want: `{"b":2,"a":1}`,
		},
		{
			name: "nested",
			node: FromPairs(
				Pair{Field: "foo", Value: FromPairs(
					Pair{Field: "bar", Value: FromString("X")},
				)},
			),
			want: `{"foo":{"bar":"X"}}`,
		},
		{
			name: "array",
			node: FromSlice([]*Node{FromInt(1), Null(), FromBool(false)}),
			want: `[1,null,false]`,
		},
		{
			name: "string escapes",
			node: FromString("a\"b\\c\nd\x01"),
			want: `"a\"b\\c\nd\u0001"`,
		},
		{
			name: "negative number",
			node: FromInt(-42),
			want: `-42`,
		},
		{
			name: "empty object",
			node: NewObject(),
			want: `{}`,
		},
		{
			name: "nil is null",
			node: nil,
			want: `null`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(AppendJSON(nil, tt.node)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestToAny(t *testing.T) {
	orig := FromPairs(
		Pair{Field: "a", Value: FromInt(1)},
		Pair{Field: "b", Value: FromSlice([]*Node{FromString("x"), Null()})},
		Pair{Field: "c", Value: FromBool(true)},
	)
	want := map[string]any{
		"a": int64(1),
		"b": []any{"x", nil},
		"c": true,
	}
	if diff := cmp.Diff(want, ToAny(orig)); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestToAnyFromAnyRoundTrip(t *testing.T) {
	orig := FromPairs(
		Pair{Field: "a", Value: FromInt(1)},
		Pair{Field: "b", Value: FromSlice([]*Node{FromString("x"), Null()})},
		Pair{Field: "c", Value: FromBool(true)},
	)
	back, err := FromAny(ToAny(orig))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(orig, back) {
		t.Errorf("round trip changed tree: %v", ToAny(back))
	}
}

func TestFromAnyFractional(t *testing.T) {
	if _, err := FromAny(1.5); err == nil {
		t.Error("FromAny(1.5) succeeded, want error")
	}
	n, err := FromAny(3.0)
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != NumberType || n.Int64 != 3 {
		t.Errorf("FromAny(3.0) = %v, want 3", n)
	}
}
