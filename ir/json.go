package ir

import (
	"strconv"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// AppendJSON appends the canonical compact JSON rendering of n to dst.
// Object keys keep their insertion order.
func AppendJSON(dst []byte, n *Node) []byte {
	if n == nil {
		return append(dst, "null"...)
	}
	switch n.Type {
	case NullType:
		return append(dst, "null"...)
	case BoolType:
		if n.Bool {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case NumberType:
		return strconv.AppendInt(dst, n.Int64, 10)
	case StringType:
		return AppendQuote(dst, n.String)
	case ArrayType:
		dst = append(dst, '[')
		for i, v := range n.Values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, v)
		}
		return append(dst, ']')
	case ObjectType:
		dst = append(dst, '{')
		for i, f := range n.Fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendQuote(dst, f)
			dst = append(dst, ':')
			dst = AppendJSON(dst, n.Values[i])
		}
		return append(dst, '}')
	}
	return append(dst, "null"...)
}

// MarshalJSON implements json.Marshaler with the canonical rendering.
func (n *Node) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, n), nil
}

// AppendQuote appends s as a double-quoted JSON string.
func AppendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			if c < utf8.RuneSelf {
				dst = append(dst, c)
				i++
				continue
			}
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				dst = append(dst, `�`...)
				i++
				continue
			}
			dst = append(dst, s[i:i+size]...)
			i += size
			continue
		}
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			dst = append(dst, '\\', 'u', '0', '0',
				hexDigits[c>>4], hexDigits[c&0xf])
		}
		i++
	}
	return append(dst, '"')
}
