package enum

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadSource returns the full content of src. stdin backs StdinProvenance sources.
func ReadSource(src Source, stdin io.Reader) ([]byte, error) {
	if src.Err != nil {
		return nil, src.Err
	}

	if src.Prov.Kind() == "stdin" {
		if stdin == nil {
			return nil, nil
		}
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(src.Prov.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", src.Prov.Path(), err)
	}
	return content, nil
}

// IsBinary detects if content is binary by checking first 8KB for null bytes.
func IsBinary(content []byte) bool {
	checkSize := len(content)
	if checkSize > 8192 {
		checkSize = 8192
	}
	return bytes.IndexByte(content[:checkSize], 0) != -1
}
