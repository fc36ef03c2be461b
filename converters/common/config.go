package common

// Defaults for the Sakila MySQL to ClickHouse conversion.
const (
	DefaultNamespace     = "sakila"
	DefaultExcludedTable = "film_text"
)

// DefaultHeader is written to the output before any converted line.
// Each entry becomes one output line; empty entries are blank lines.
var DefaultHeader = []string{
	"-- Sakila Sample Database Data for ClickHouse",
	"-- Converted from MySQL Sakila database",
	"-- Version 1.2",
	"",
	"-- Copyright (c) 2006, 2019, Oracle and/or its affiliates.",
	"-- All rights reserved.",
	"-- BSD License",
	"",
}

// DefaultTableTransforms binds the tables needing column rewrites to their transformer names.
var DefaultTableTransforms = map[string]string{
	"film":    "set_to_array",
	"staff":   "strip_blob",
	"address": "strip_geometry",
}

// ConversionConfig stores configuration options for the conversion process.
type ConversionConfig struct {
	Namespace       string            // Namespace (database) prefixed to every table reference
	ExcludedTables  []string          // Tables whose rows are derived in the source and never replayed
	TableTransforms map[string]string // Table name -> registered transformer name
	Header          []string          // Lines written before the converted stream
	Verbose         bool              // Enable detailed logging
	Strict          bool              // Fail on lines that match no known kind instead of dropping them
}

// DefaultConversionConfig returns a config reproducing the stock Sakila conversion.
func DefaultConversionConfig() *ConversionConfig {
	transforms := make(map[string]string, len(DefaultTableTransforms))
	for table, name := range DefaultTableTransforms {
		transforms[table] = name
	}
	return &ConversionConfig{
		Namespace:       DefaultNamespace,
		ExcludedTables:  []string{DefaultExcludedTable},
		TableTransforms: transforms,
		Header:          append([]string(nil), DefaultHeader...),
	}
}

// IsExcluded reports whether rows for table must be suppressed.
func (c *ConversionConfig) IsExcluded(table string) bool {
	for _, t := range c.ExcludedTables {
		if t == table {
			return true
		}
	}
	return false
}
