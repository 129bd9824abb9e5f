package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Output destinations, swappable in tests.
var (
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
)

// printJSON writes v as indented JSON, used by every command behind --json.
func printJSON(v any) error {
	enc := json.NewEncoder(outWriter)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
