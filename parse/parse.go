package parse

import (
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/hrytsenko/json-data/debug"
	"github.com/hrytsenko/json-data/ir"
)

// Error reports a decoding failure with the byte offset it occurred at.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parse decodes d into a tree. Trailing non-whitespace input is an
// error.
func Parse(d []byte) (*ir.Node, error) {
	s := &scanner{d: d}
	s.skipSpace()
	res, err := s.value()
	if err == nil {
		s.skipSpace()
		if s.pos != len(s.d) {
			err = s.errf("trailing data after value")
		}
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %v\n", err)
		}
		return nil, err
	}
	return res, nil
}

type scanner struct {
	d   []byte
	pos int
}

func (s *scanner) errf(format string, args ...any) error {
	return &Error{Offset: s.pos, Msg: fmt.Sprintf(format, args...)}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.d) {
		switch s.d[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) value() (*ir.Node, error) {
	if s.pos >= len(s.d) {
		return nil, s.errf("unexpected end of input")
	}
	switch c := s.d[s.pos]; {
	case c == '{':
		return s.object()
	case c == '[':
		return s.array()
	case c == '"' || c == '\'':
		str, err := s.string()
		if err != nil {
			return nil, err
		}
		return ir.FromString(str), nil
	case c == 't':
		if err := s.literal("true"); err != nil {
			return nil, err
		}
		return ir.FromBool(true), nil
	case c == 'f':
		if err := s.literal("false"); err != nil {
			return nil, err
		}
		return ir.FromBool(false), nil
	case c == 'n':
		if err := s.literal("null"); err != nil {
			return nil, err
		}
		return ir.Null(), nil
	case c == '-' || ('0' <= c && c <= '9'):
		return s.number()
	default:
		return nil, s.errf("unexpected character %q", c)
	}
}

func (s *scanner) literal(lit string) error {
	if len(s.d)-s.pos < len(lit) || string(s.d[s.pos:s.pos+len(lit)]) != lit {
		return s.errf("invalid literal")
	}
	s.pos += len(lit)
	return nil
}

func (s *scanner) object() (*ir.Node, error) {
	s.pos++ // '{'
	res := ir.NewObject()
	s.skipSpace()
	if s.pos < len(s.d) && s.d[s.pos] == '}' {
		s.pos++
		return res, nil
	}
	for {
		s.skipSpace()
		if s.pos >= len(s.d) || (s.d[s.pos] != '"' && s.d[s.pos] != '\'') {
			return nil, s.errf("expected object key")
		}
		key, err := s.string()
		if err != nil {
			return nil, err
		}
		s.skipSpace()
		if s.pos >= len(s.d) || s.d[s.pos] != ':' {
			return nil, s.errf("expected ':' after object key")
		}
		s.pos++
		s.skipSpace()
		v, err := s.value()
		if err != nil {
			return nil, err
		}
		res.Set(key, v)
		s.skipSpace()
		if s.pos >= len(s.d) {
			return nil, s.errf("unterminated object")
		}
		switch s.d[s.pos] {
		case ',':
			s.pos++
		case '}':
			s.pos++
			return res, nil
		default:
			return nil, s.errf("expected ',' or '}' in object")
		}
	}
}

func (s *scanner) array() (*ir.Node, error) {
	s.pos++ // '['
	res := ir.NewArray()
	s.skipSpace()
	if s.pos < len(s.d) && s.d[s.pos] == ']' {
		s.pos++
		return res, nil
	}
	for {
		s.skipSpace()
		v, err := s.value()
		if err != nil {
			return nil, err
		}
		res.Append(v)
		s.skipSpace()
		if s.pos >= len(s.d) {
			return nil, s.errf("unterminated array")
		}
		switch s.d[s.pos] {
		case ',':
			s.pos++
		case ']':
			s.pos++
			return res, nil
		default:
			return nil, s.errf("expected ',' or ']' in array")
		}
	}
}

func (s *scanner) number() (*ir.Node, error) {
	start := s.pos
	if s.d[s.pos] == '-' {
		s.pos++
	}
	for s.pos < len(s.d) && '0' <= s.d[s.pos] && s.d[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start || (s.pos == start+1 && s.d[start] == '-') {
		return nil, s.errf("invalid number")
	}
	if s.pos < len(s.d) {
		switch s.d[s.pos] {
		case '.', 'e', 'E':
			return nil, s.errf("fractional numbers are not supported")
		}
	}
	v, err := strconv.ParseInt(string(s.d[start:s.pos]), 10, 64)
	if err != nil {
		return nil, &Error{Offset: start, Msg: "number out of int64 range"}
	}
	return ir.FromInt(v), nil
}

// string decodes a double- or single-quoted string. Both delimiters
// use the same escape sequences; inside single quotes a double quote
// needs no escaping and vice versa.
func (s *scanner) string() (string, error) {
	quote := s.d[s.pos]
	s.pos++
	var buf []byte
	for {
		if s.pos >= len(s.d) {
			return "", s.errf("unterminated string")
		}
		c := s.d[s.pos]
		switch {
		case c == quote:
			s.pos++
			return string(buf), nil
		case c == '\\':
			r, err := s.escape()
			if err != nil {
				return "", err
			}
			buf = utf8.AppendRune(buf, r)
		case c < 0x20:
			return "", s.errf("control character in string")
		default:
			buf = append(buf, c)
			s.pos++
		}
	}
}

func (s *scanner) escape() (rune, error) {
	s.pos++ // '\\'
	if s.pos >= len(s.d) {
		return 0, s.errf("unterminated escape")
	}
	c := s.d[s.pos]
	s.pos++
	switch c {
	case '"', '\'', '\\', '/':
		return rune(c), nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'u':
		r, err := s.hex4()
		if err != nil {
			return 0, err
		}
		if utf16.IsSurrogate(r) && s.pos+1 < len(s.d) &&
			s.d[s.pos] == '\\' && s.d[s.pos+1] == 'u' {
			s.pos += 2
			r2, err := s.hex4()
			if err != nil {
				return 0, err
			}
			if c := utf16.DecodeRune(r, r2); c != utf8.RuneError {
				return c, nil
			}
			return utf8.RuneError, nil
		}
		if utf16.IsSurrogate(r) {
			return utf8.RuneError, nil
		}
		return r, nil
	default:
		return 0, s.errf("invalid escape character %q", c)
	}
}

func (s *scanner) hex4() (rune, error) {
	if s.pos+4 > len(s.d) {
		return 0, s.errf("truncated unicode escape")
	}
	v, err := strconv.ParseUint(string(s.d[s.pos:s.pos+4]), 16, 32)
	if err != nil {
		return 0, s.errf("invalid unicode escape")
	}
	s.pos += 4
	return rune(v), nil
}
