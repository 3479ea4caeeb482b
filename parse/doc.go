// Package parse decodes JSON text into plain trees.
//
// The decoder is deliberately tolerant of single-quoted strings in
// addition to standard double-quoted ones, and it decodes every
// integral number as a 64-bit integer. Fractional numbers are outside
// the supported contract and are rejected with an explicit error
// rather than truncated. Duplicate object keys keep the first key's
// position and the last value.
package parse
