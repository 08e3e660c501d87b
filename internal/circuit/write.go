package circuit

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteFile renders result's QASM/trailer output into memory and writes it
// to path via a rename-into-place, the same torn-write avoidance the
// teacher uses for its on-disk cache (cache_binary.go).
func WriteFile(path string, write func(w *bytes.Buffer) error) error {
	var buf bytes.Buffer

	if err := write(&buf); err != nil {
		return fmt.Errorf("circuit: rendering output: %w", err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("circuit: writing %s: %w", path, err)
	}

	return nil
}
