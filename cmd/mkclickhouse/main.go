package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/darianmavgo/mkclickhouse/config"
	"github.com/darianmavgo/mkclickhouse/converters"
	_ "github.com/darianmavgo/mkclickhouse/converters/all"
	"github.com/darianmavgo/mkclickhouse/converters/common"
)

const (
	defaultInput  = "../mysql/2-sakila-data.sql"
	defaultOutput = "2-clickhouse-sakila-data.sql"
)

var cliCtx struct {
	configPath       string
	verbose          bool
	strict           bool
	listTransformers bool
}

// DumpToClickHouse converts the MySQL dump at inputPath into a ClickHouse dump at outputPath.
func DumpToClickHouse(inputPath, outputPath string, cfg *common.ConversionConfig) (err error) {
	rewriter, err := converters.NewRewriter(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize rewriter: %w", err)
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer inputFile.Close()

	// Ensure output directory exists
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outputFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return rewriter.ConvertToSQL(inputFile, outputFile)
}

func loadConversionConfig() (*common.ConversionConfig, error) {
	cfg := config.DefaultConfig()
	if cliCtx.configPath != "" {
		loaded, err := config.Load(cliCtx.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	conv := cfg.ConversionConfig()
	conv.Verbose = conv.Verbose || cliCtx.verbose
	conv.Strict = conv.Strict || cliCtx.strict
	return conv, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if cliCtx.listTransformers {
		for _, name := range converters.Transformers() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	inputPath, outputPath := defaultInput, defaultOutput
	if len(args) >= 1 {
		inputPath = args[0]
	}
	if len(args) >= 2 {
		outputPath = args[1]
	}

	cfg, err := loadConversionConfig()
	if err != nil {
		return err
	}

	if err := DumpToClickHouse(inputPath, outputPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully converted %s to %s\n", inputPath, outputPath)
	return nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkclickhouse [options] [input_dump] [output_dump]",
		Short: "convert the Sakila MySQL data dump to ClickHouse",
		Long: "Rewrites a mysqldump of the Sakila sample database into statements ClickHouse accepts:\n" +
			"tables are qualified with the target database, session statements are dropped,\n" +
			"and the film, staff and address columns are reshaped.",
		Args:          cobra.MaximumNArgs(2),
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&cliCtx.configPath, "config", "", "HCL configuration file")
	f.BoolVar(&cliCtx.verbose, "verbose", false, "log table switches and conversion statistics")
	f.BoolVar(&cliCtx.strict, "strict", false, "fail on lines that match no known statement kind")
	f.BoolVar(&cliCtx.listTransformers, "list-transformers", false, "print the registered table transformers and exit")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error converting dump: %v\n", err)
		os.Exit(1)
	}
}
