package emit

import (
	"fmt"
	"strings"
)

// PathType renders the type module: a union of string literals covering
// every derivable route path. Paths containing a dynamic-segment
// placeholder are emitted as template-literal types; the rest as plain
// literals. Input is assumed deduplicated and sorted by the builder.
func PathType(paths []string) []byte {
	var b strings.Builder

	b.WriteString(header + "\n\n")

	if len(paths) == 0 {
		b.WriteString("export type RoutePath = never;\n")
		return []byte(b.String())
	}

	b.WriteString("export type RoutePath =\n")
	for i, p := range paths {
		terminator := "\n"
		if i == len(paths)-1 {
			terminator = ";\n"
		}
		fmt.Fprintf(&b, "  | %s%s", pathLiteral(p), terminator)
	}

	return []byte(b.String())
}

// pathLiteral quotes one path, switching to a template literal when the
// path carries a "${string}" placeholder.
func pathLiteral(p string) string {
	if strings.Contains(p, "${") {
		return "`" + p + "`"
	}
	return fmt.Sprintf("%q", p)
}
