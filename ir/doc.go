// Package ir contains the plain tree representation shared between
// documents and their collaborators. A tree is recursively an ordered
// object (string keys, insertion order, unique keys), an array, a
// string, a 64-bit integer, a bool, or null.
//
// Trees are mutable and not synchronized. Helpers that hand out child
// nodes return live nodes sharing storage with the parent.
package ir
