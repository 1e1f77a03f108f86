package tvdbrenamer

import (
	"strings"

	internalscope "github.com/tvdb-renamer/tvdbrenamer/internal/scope"
)

// normalizeArgs rewrites the multi-character short forms (eg., -lc FILE, -lc=FILE) into their long form.
//
// Arguments after the "--" terminator are left untouched.
func normalizeArgs(s *internalscope.Scope, args []string) []string {
	res := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(res, args[i:]...)
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			res = append(res, arg)

			continue
		}

		head, value, hasValue := strings.Cut(arg, "=")
		if name, ok := s.Alias(head); ok {
			arg = "--" + name
			if hasValue {
				arg += "=" + value
			}
		}
		res = append(res, arg)
	}

	return res
}
