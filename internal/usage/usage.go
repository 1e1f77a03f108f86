package internalusage

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	internalenv "github.com/tvdb-renamer/tvdbrenamer/internal/env"
	internaltag "github.com/tvdb-renamer/tvdbrenamer/internal/tag"
)

const (
	// LocalGroupID collects the flags without a group annotation
	LocalGroupID = "<local>"
)

// rpad adds padding to the right of a string.
func rpad(s string, padding int) string {
	template := fmt.Sprintf("%%-%ds", padding)
	return fmt.Sprintf(template, s)
}

// tmpl is a helper function that writes a string to the provided writer.
func tmpl(w io.Writer, text string) error {
	_, err := w.Write([]byte(text))
	return err
}

// Groups returns the flags of the command organized by their group annotation.
//
// Flags without a group annotation are placed into the local group.
func Groups(c *cobra.Command) map[string]*pflag.FlagSet {
	groups := map[string]*pflag.FlagSet{}

	c.Flags().VisitAll(func(f *pflag.Flag) {
		groupID := LocalGroupID
		if annotations, ok := f.Annotations[internaltag.FlagGroupAnnotation]; ok && len(annotations) > 0 {
			groupID = annotations[0]
		}
		if groups[groupID] == nil {
			groups[groupID] = pflag.NewFlagSet(c.Name(), pflag.ContinueOnError)
			groups[groupID].SortFlags = false
		}
		groups[groupID].AddFlag(f)
	})

	return groups
}

// shorts returns the short forms of the flag: its shorthand, then its multi-character aliases.
func shorts(f *pflag.Flag) []string {
	var res []string
	if f.Shorthand != "" {
		res = append(res, "-"+f.Shorthand)
	}
	for _, alias := range f.Annotations[internaltag.FlagAliasAnnotation] {
		res = append(res, "-"+alias)
	}

	return res
}

func isZeroDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "", "0", "[]", "false":
		return true
	}

	return false
}

// FlagUsages generates the usage lines of the flags in the set.
//
// Unlike pflag it lists the multi-character short forms and the environment variables.
func FlagUsages(fs *pflag.FlagSet) string {
	type line struct {
		left, right string
	}
	var (
		lines []line
		width int
	)

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		names := shorts(f)
		names = append(names, "--"+f.Name)
		left := "  " + strings.Join(names, ", ")

		varname, usage := pflag.UnquoteUsage(f)
		if metavar, ok := f.Annotations[internaltag.FlagMetavarAnnotation]; ok && len(metavar) > 0 {
			varname = metavar[0]
		}
		if f.Value.Type() != "bool" && varname != "" {
			left += " " + varname
		}

		right := usage
		if !isZeroDefault(f) {
			right += fmt.Sprintf(" (default: %s)", f.DefValue)
		}
		if envs, ok := f.Annotations[internalenv.FlagAnnotation]; ok && len(envs) > 0 {
			right += fmt.Sprintf(" [env var: %s]", strings.Join(envs, ", "))
		}

		if len(left) > width {
			width = len(left)
		}
		lines = append(lines, line{left, right})
	})

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(rpad(l.left, width+3))
		b.WriteString(strings.TrimSpace(l.right))
		b.WriteString("\n")
	}

	return b.String()
}

// Render builds the usage text of the command, with flags grouped by their group annotation.
func Render(c *cobra.Command, footer string) string {
	var b strings.Builder

	// Usage Line
	b.WriteString("Usage:\n  ")
	b.WriteString(c.UseLine())
	b.WriteString("\n")

	// Examples
	if len(c.Example) > 0 {
		b.WriteString("\nExamples:\n")
		b.WriteString(c.Example)
		b.WriteString("\n")
	}

	groups := Groups(c)

	// Print default "Flags" group first, if it exists
	if lFlags, ok := groups[LocalGroupID]; ok && lFlags.HasFlags() {
		b.WriteString("\nFlags:\n")
		b.WriteString(FlagUsages(lFlags))
		delete(groups, LocalGroupID)
	}

	// Then print all other custom groups
	groupKeys := make([]string, 0, len(groups))
	for k := range groups {
		groupKeys = append(groupKeys, k)
	}
	sort.Strings(groupKeys)

	for _, groupName := range groupKeys {
		flags := groups[groupName]
		if flags.HasFlags() {
			b.WriteString(fmt.Sprintf("\n%s Flags:\n", groupName))
			b.WriteString(FlagUsages(flags))
		}
	}

	if footer != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(footer, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

// Setup sets the usage and help functions for the command.
//
// Usage goes to the error output, help (long description followed by usage) to the standard output.
func Setup(c *cobra.Command, footer string) {
	c.SetUsageFunc(func(c *cobra.Command) error {
		return tmpl(c.OutOrStderr(), Render(c, footer))
	})
	c.SetHelpFunc(func(c *cobra.Command, _ []string) {
		var b strings.Builder
		if long := strings.TrimSpace(c.Long); long != "" {
			b.WriteString(long)
			b.WriteString("\n\n")
		}
		b.WriteString(Render(c, footer))
		if err := tmpl(c.OutOrStdout(), b.String()); err != nil {
			c.PrintErrln(err)
		}
	})
}
