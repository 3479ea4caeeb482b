package dotpath

import (
	"fmt"
	"strings"
	"sync"
)

// Path is an immutable parsed path. The zero value is the root path,
// which addresses the document root itself and cannot be produced by
// Parse.
type Path struct {
	raw  string
	segs []string
}

// SyntaxError reports a malformed path string.
type SyntaxError struct {
	Path string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("path %q: %s at offset %d", e.Path, e.Msg, e.Pos)
}

// The cache is the only state shared between documents; sync.Map keeps
// it safe without synchronizing documents themselves.
var cache sync.Map // string -> Path

// Parse splits path into segments. An empty path or an empty segment
// (leading, trailing, or doubled dot) is a *SyntaxError.
func Parse(path string) (Path, error) {
	if v, ok := cache.Load(path); ok {
		return v.(Path), nil
	}
	if path == "" {
		return Path{}, &SyntaxError{Path: path, Msg: "empty path"}
	}
	segs := strings.Split(path, ".")
	pos := 0
	for _, seg := range segs {
		if seg == "" {
			return Path{}, &SyntaxError{Path: path, Pos: pos, Msg: "empty segment"}
		}
		pos += len(seg) + 1
	}
	p := Path{raw: path, segs: segs}
	cache.Store(path, p)
	return p, nil
}

// MustParse is Parse panicking on malformed paths.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of segments, 0 for the root path.
func (p Path) Len() int {
	return len(p.segs)
}

// Seg returns the i-th segment.
func (p Path) Seg(i int) string {
	return p.segs[i]
}

// Leaf returns the last segment, or "" for the root path.
func (p Path) Leaf() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[len(p.segs)-1]
}

// Parent returns the path with the last segment removed; the parent of
// a single-segment path is the root path.
func (p Path) Parent() Path {
	if len(p.segs) <= 1 {
		return Path{}
	}
	segs := p.segs[:len(p.segs)-1]
	return Path{raw: strings.Join(segs, "."), segs: segs}
}

// IsRoot reports whether p addresses the document root.
func (p Path) IsRoot() bool {
	return len(p.segs) == 0
}

func (p Path) String() string {
	return p.raw
}
