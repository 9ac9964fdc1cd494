// Package command turns raw ipmt arguments into a validated, immutable Command.
package command

// Option identifies a recognized command-line option kind.
type Option int

const (
	OptHelp Option = iota
	OptEdit
	OptPatternFile
	OptAlgorithm
	OptCount
)

// String returns the string representation of Option
func (o Option) String() string {
	switch o {
	case OptHelp:
		return "help"
	case OptEdit:
		return "edit"
	case OptPatternFile:
		return "pattern"
	case OptAlgorithm:
		return "algorithm"
	case OptCount:
		return "count"
	default:
		return "unknown"
	}
}

// Algorithm selects the matching engine.
type Algorithm int

const (
	// Default lets the matcher pick an engine from the pattern set and edit distance.
	Default Algorithm = iota
	BruteForce
	KMP
	AhoCorasick
	Sellers
)

// algorithmCodes maps the short codes accepted after -a/--algorithm_name.
var algorithmCodes = map[string]Algorithm{
	"bf":  BruteForce,
	"kmp": KMP,
	"aho": AhoCorasick,
	"sel": Sellers,
}

// LookupAlgorithm resolves a short code such as "kmp".
func LookupAlgorithm(code string) (Algorithm, bool) {
	a, ok := algorithmCodes[code]
	return a, ok
}

// String returns the human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Default:
		return "default"
	case BruteForce:
		return "brute force"
	case KMP:
		return "KMP"
	case AhoCorasick:
		return "Aho-Corasick"
	case Sellers:
		return "Sellers"
	default:
		return "unknown"
	}
}

// Code returns the short code accepted on the command line ("" for Default).
func (a Algorithm) Code() string {
	for code, alg := range algorithmCodes {
		if alg == a {
			return code
		}
	}
	return ""
}

// IsExact reports whether the algorithm finds literal occurrences only.
func (a Algorithm) IsExact() bool {
	return a == BruteForce || a == KMP || a == AhoCorasick
}

// Command is the parsed form of an ipmt invocation. It is immutable once
// returned from Parse.
type Command struct {
	options      map[Option]struct{}
	algorithm    Algorithm
	editDistance int
	patternFile  *string
	pattern      *string
	textFiles    []string
}

// Options returns the selected options in declaration order.
func (c *Command) Options() []Option {
	opts := make([]Option, 0, len(c.options))
	for o := OptHelp; o <= OptCount; o++ {
		if _, ok := c.options[o]; ok {
			opts = append(opts, o)
		}
	}
	return opts
}

// Has reports whether the option was given.
func (c *Command) Has(o Option) bool {
	_, ok := c.options[o]
	return ok
}

// Algorithm returns the selected algorithm, Default when -a was not given.
func (c *Command) Algorithm() Algorithm { return c.algorithm }

// EditDistance returns the -e value, 0 when not given. It is not range checked.
func (c *Command) EditDistance() int { return c.editDistance }

// PatternFile returns the pattern file path when -p/--pattern was given.
func (c *Command) PatternFile() (string, bool) {
	if c.patternFile == nil {
		return "", false
	}
	return *c.patternFile, true
}

// Pattern returns the literal pattern when one was given on the command line.
func (c *Command) Pattern() (string, bool) {
	if c.pattern == nil {
		return "", false
	}
	return *c.pattern, true
}

// TextFiles returns the files to search in command-line order.
func (c *Command) TextFiles() []string {
	files := make([]string, len(c.textFiles))
	copy(files, c.textFiles)
	return files
}

// IsExactMatching is true for BruteForce, KMP and AhoCorasick.
func (c *Command) IsExactMatching() bool {
	return c.algorithm.IsExact()
}
