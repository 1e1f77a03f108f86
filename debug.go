package tvdbrenamer

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// DebugTo writes the config files that got merged and the resulting values to w (defaults to os.Stdout).
func (o *Options) DebugTo(w io.Writer) {
	dest := io.Writer(os.Stdout)
	if w != nil {
		dest = w
	}

	fmt.Fprintln(dest, "Sources:")
	if len(o.sources) == 0 {
		fmt.Fprintln(dest, "  (none)")
	}
	for _, src := range o.sources {
		fmt.Fprintf(dest, "  %s\n", src)
	}

	fmt.Fprintln(dest, "Values:")
	for _, key := range slices.Sorted(maps.Keys(o.settings)) {
		fmt.Fprintf(dest, "  %s: %v\n", key, o.settings[key])
	}
	if len(o.args) > 0 {
		fmt.Fprintf(dest, "Args:\n  %v\n", o.args)
	}
}
