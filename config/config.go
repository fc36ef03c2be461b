package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/darianmavgo/mkclickhouse/converters/common"
)

// Config represents the application configuration.
type Config struct {
	Namespace      string      `hcl:"namespace,optional"`
	ExcludedTables []string    `hcl:"excluded_tables,optional"`
	Header         []string    `hcl:"header,optional"`
	Verbose        bool        `hcl:"verbose,optional"`
	Strict         bool        `hcl:"strict,optional"`
	Tables         []TableRule `hcl:"table,block"`
}

// TableRule binds a transformer to one table:
//
//	table "film" { transform = "set_to_array" }
type TableRule struct {
	Name      string `hcl:"name,label"`
	Transform string `hcl:"transform"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	def := common.DefaultConversionConfig()
	cfg := &Config{
		Namespace:      def.Namespace,
		ExcludedTables: def.ExcludedTables,
		Header:         def.Header,
	}
	for _, table := range sortedKeys(def.TableTransforms) {
		cfg.Tables = append(cfg.Tables, TableRule{Name: table, Transform: def.TableTransforms[table]})
	}
	return cfg
}

// Load reads the configuration from the given HCL file.
// Attributes missing from the file keep their defaults; table blocks, when present,
// replace the default bindings.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	seen := make(map[string]bool, len(cfg.Tables))
	for _, rule := range cfg.Tables {
		if seen[rule.Name] {
			return nil, fmt.Errorf("duplicate table block %q in %s", rule.Name, path)
		}
		seen[rule.Name] = true
	}

	return cfg, nil
}

// ConversionConfig returns the converter options described by cfg.
func (cfg *Config) ConversionConfig() *common.ConversionConfig {
	transforms := make(map[string]string, len(cfg.Tables))
	for _, rule := range cfg.Tables {
		transforms[rule.Name] = rule.Transform
	}
	return &common.ConversionConfig{
		Namespace:       cfg.Namespace,
		ExcludedTables:  append([]string(nil), cfg.ExcludedTables...),
		TableTransforms: transforms,
		Header:          append([]string(nil), cfg.Header...),
		Verbose:         cfg.Verbose,
		Strict:          cfg.Strict,
	}
}

// Export writes the configuration to the specified file in HCL format.
func Export(path string, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("namespace", cty.StringVal(cfg.Namespace))
	root.SetAttributeValue("excluded_tables", stringList(cfg.ExcludedTables))
	root.SetAttributeValue("header", stringList(cfg.Header))
	root.SetAttributeValue("verbose", cty.BoolVal(cfg.Verbose))
	root.SetAttributeValue("strict", cty.BoolVal(cfg.Strict))

	for _, rule := range cfg.Tables {
		root.AppendNewline()
		block := root.AppendNewBlock("table", []string{rule.Name})
		block.Body().SetAttributeValue("transform", cty.StringVal(rule.Transform))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}

	return nil
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
