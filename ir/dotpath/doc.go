// Package dotpath parses dot-separated key paths.
//
// A path addresses a node inside an object tree by naming one map key
// per segment: "customer.address.city". Segments are plain keys, there
// is no wildcard or index syntax. Parsed paths are cached per distinct
// path string, so malformed paths fail once at a well-defined point
// instead of deep inside a read or write.
package dotpath
