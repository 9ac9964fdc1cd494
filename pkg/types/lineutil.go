package types

import "bytes"

// SplitLines splits content on '\n'. A trailing newline does not produce an
// empty final line, and a trailing '\r' is stripped from each line.
func SplitLines(content []byte) [][]byte {
	if len(content) == 0 {
		return nil
	}
	content = bytes.TrimSuffix(content, []byte("\n"))
	lines := bytes.Split(content, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte("\r"))
	}
	return lines
}
