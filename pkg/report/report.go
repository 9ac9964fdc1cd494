package report

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/ipmt/pkg/types"
)

// Writer renders results to an output stream.
type Writer struct {
	out    io.Writer
	styles *Styles
	// withNames prefixes each output line with the source name.
	withNames bool
}

// NewWriter creates a Writer. withNames should be set when more than one
// source was searched.
func NewWriter(out io.Writer, styles *Styles, withNames bool) *Writer {
	if styles == nil {
		styles = NewStyles(false)
	}
	return &Writer{out: out, styles: styles, withNames: withNames}
}

// Counts writes the occurrence count of every readable source.
func (w *Writer) Counts(results []types.FileResult) error {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := w.prefix(r.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w.out, "%d\n", r.Occurrences); err != nil {
			return err
		}
	}
	return nil
}

// Lines writes every matching line with its occurrences highlighted.
func (w *Writer) Lines(results []types.FileResult) error {
	for _, r := range results {
		if r.Err != nil || !r.Matched() {
			continue
		}
		if r.Binary {
			if _, err := fmt.Fprintf(w.out, "Binary file %s matches\n", r.Name); err != nil {
				return err
			}
			continue
		}
		for _, line := range r.Lines {
			if err := w.prefix(r.Name); err != nil {
				return err
			}
			if _, err := io.WriteString(w.out, w.highlight(line)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Warning writes a non-fatal per-source problem as "program: err".
func Warning(out io.Writer, styles *Styles, program string, err error) error {
	if styles == nil {
		styles = NewStyles(false)
	}
	_, werr := fmt.Fprintf(out, "%s: %s\n", program, styles.warning.Sprint(err.Error()))
	return werr
}

func (w *Writer) prefix(name string) error {
	if !w.withNames {
		return nil
	}
	_, err := fmt.Fprint(w.out, w.styles.fileName.Sprint(name), w.styles.separator.Sprint(":"))
	return err
}

// highlight renders line text with merged occurrence spans styled as matches.
func (w *Writer) highlight(line types.LineMatch) string {
	spans := make([]types.OffsetSpan, 0, len(line.Occurrences))
	for _, o := range line.Occurrences {
		spans = append(spans, o.Span)
	}

	text := line.Text
	var out []byte
	pos := 0
	for _, s := range types.MergeSpans(spans) {
		start, end := clamp(s.Start, len(text)), clamp(s.End, len(text))
		if end <= start || start < pos {
			continue
		}
		out = append(out, text[pos:start]...)
		out = append(out, w.styles.match.Sprint(string(text[start:end]))...)
		pos = end
	}
	out = append(out, text[pos:]...)
	return string(out)
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
