package debug

import (
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stderr

// Logf writes to stderr. Trees have no printf verb of their own;
// render them with encode.MustString before passing.
func Logf(msg string, args ...any) {
	fmt.Fprintf(out, msg, args...)
}
