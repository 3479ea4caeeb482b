// Package debug provides env-gated debug logging for the library.
// Each area is switched on with its own variable, e.g.
// JSONDATA_DEBUG_PATH=1.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path      bool
	Parse     bool
	Transform bool
	Validate  bool
}

var d *debug

func init() {
	load()
}

func load() {
	d = &debug{
		Path:      boolEnv("JSONDATA_DEBUG_PATH"),
		Parse:     boolEnv("JSONDATA_DEBUG_PARSE"),
		Transform: boolEnv("JSONDATA_DEBUG_TRANSFORM"),
		Validate:  boolEnv("JSONDATA_DEBUG_VALIDATE"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Parse() bool {
	return d.Parse
}
func Transform() bool {
	return d.Transform
}
func Validate() bool {
	return d.Validate
}
