package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write sends a rendered calendar document to its destination. With an
// empty path the document goes to out verbatim (the CLI passes stdout);
// otherwise it is written as a UTF-8 file and the absolute path is
// returned for the confirmation message. The document is complete in
// memory before this is called, so a failed write never leaves a
// half-reported success.
func Write(out io.Writer, content, path string) (string, error) {
	if path == "" {
		_, err := io.WriteString(out, content)
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write calendar file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	return abs, nil
}
