package types

// LineMatch is a line containing at least one occurrence.
type LineMatch struct {
	Number      int // 1-based
	Text        []byte
	Occurrences []Occurrence
}

// FileResult holds the outcome of scanning one source.
type FileResult struct {
	Name         string
	Lines        []LineMatch // empty in count mode
	Occurrences  int
	MatchedLines int
	Binary       bool
	Err          error
}

// Matched reports whether the source contained any occurrence.
func (r *FileResult) Matched() bool {
	return r.Occurrences > 0
}
