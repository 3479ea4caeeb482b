// Package jsondata provides a mutable, path-addressed document
// abstraction over dynamically shaped JSON values. Instead of mapping
// documents field by field onto static structs, domain types embed
// Entity and expose typed accessors over dotted key paths:
//
//	type Customer struct {
//		jsondata.Entity
//	}
//
//	func NewCustomer() *Customer { return &Customer{} }
//
//	func (c *Customer) Name() string {
//		return c.GetString("customer.name")
//	}
//
// Documents are mutable and not thread-safe. No copying is performed
// for input or output values: Tree, GetMap, GetList and friends return
// live views, and Put operations store the supplied nodes directly.
//
// Absence is never an error: reading a path that does not exist, or
// that holds an explicit null, yields the zero value. Malformed paths,
// type narrowing failures, and factory construction failures are
// programming errors and panic with *PathError, *TypeError, and
// *ConstructError respectively. Parsing, transformation, and
// validation failures are returned as errors with their causes
// attached.
package jsondata
