package config

import "fmt"

// ExportConfig controls persistence of cycle results.
type ExportConfig struct {
	// Path is the output file; empty disables export.
	Path string `json:"path"`
	// Format is "json" or "csv".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *ExportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks the format.
func (c ExportConfig) Validate() error {
	if c.Format != "json" && c.Format != "csv" {
		return fmt.Errorf("unknown export format %s", c.Format)
	}
	return nil
}
