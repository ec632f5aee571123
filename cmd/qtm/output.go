package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sartorproj/goqtm/qtm"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeJSON exports v as indented JSON to path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// displayName returns "Name (CODE)" for known codes and the code otherwise.
func displayName(code string) string {
	if name, ok := qtm.CountryName(code); ok {
		return fmt.Sprintf("%s (%s)", name, code)
	}
	return code
}
