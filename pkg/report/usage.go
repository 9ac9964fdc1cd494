package report

import (
	"fmt"
	"io"
)

// Usage writes the help text for program. s may be nil.
func Usage(w io.Writer, s *Styles, program, version string) error {
	if s == nil {
		s = NewStyles(false)
	}

	_, err := fmt.Fprintf(w, `%s %s - pattern matching with exact and approximate algorithms

%s
  %s [options] (<pattern> | <pattern-file>) [textfile...]

%s
  -h, --help                      show this help and exit
  -p, --pattern                   read patterns from <pattern-file>, one per line
  -a, --algorithm_name <name>     matching algorithm:
                                    bf   brute force
                                    kmp  Knuth-Morris-Pratt
                                    aho  Aho-Corasick
                                    sel  Sellers (approximate)
  -c, --count                     print the number of occurrences instead of lines
  -e, --edit <n>                  allow up to n edits per occurrence

Without -a, ipmt uses Sellers when -e is above zero, Aho-Corasick for several
patterns and KMP for a single one. With no text files, or with "-", standard
input is searched. Directories are searched recursively.

Exit status is 0 if an occurrence was found, 1 if none was, and 2 on error.
`,
		program, version,
		s.heading.Sprint("Usage:"), program,
		s.heading.Sprint("Options:"),
	)
	return err
}
