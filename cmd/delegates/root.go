package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"delegates/internal/classifier"
	"delegates/internal/config"
	"delegates/internal/formatter"
	"delegates/internal/loader"
	"delegates/internal/logger"
	"delegates/internal/models"
	"delegates/internal/normalizer"
)

const defaultConfigPath = "configs/delegates.yaml"

var (
	configPath  string
	inputPath   string
	catalogPath string
	outputPath  string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "delegates",
	Short: "Classify delegate biographies and summarise them",
	Long: `Reads the delegate dataset, infers each delegate's province and
professional domains, and renders gender, province, age and domain
statistics together with the province roster.

Without a sub-command the output format comes from output.format.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := setup()
		if err != nil {
			return err
		}

		if env.cfg.Output.Format == config.FormatJSON {
			return runExport(env)
		}

		return runSummary(env)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default "+defaultConfigPath+" if present)")
	flags.StringVarP(&inputPath, "input", "i", "", "dataset JSON file, overrides dataset.path")
	flags.StringVar(&catalogPath, "catalog", "", "catalog YAML file, overrides catalog.file")
	flags.StringVarP(&outputPath, "output", "o", "", "output file, overrides output.path (stdout when empty)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error, overrides logging.level")

	rootCmd.AddCommand(summaryCmd, exportCmd, catalogCmd, showCmd)
}

// env is the resolved configuration shared by every sub-command.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func setup() (*env, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(cfg.Logging.Level)
	log.Debug("configuration resolved", "config", cfg.String())

	return &env{cfg: cfg, log: log}, nil
}

func resolveConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	cfg := config.DefaultConfig()

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if inputPath != "" {
		cfg.Dataset.Path = inputPath
	}

	if catalogPath != "" {
		cfg.Catalog.File = catalogPath
	}

	if outputPath != "" {
		cfg.Output.Path = outputPath
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (e *env) catalog() (*classifier.Catalog, error) {
	if e.cfg.UsesDefaultCatalog() {
		return classifier.DefaultCatalog(), nil
	}

	catalog, err := loader.LoadCatalog(e.cfg.Catalog.File)
	if err != nil {
		return nil, err
	}

	e.log.Info("loaded catalog", "file", e.cfg.Catalog.File,
		"provinces", len(catalog.Provinces), "domains", len(catalog.Domains))

	return catalog, nil
}

func (e *env) report() (*models.Report, error) {
	catalog, err := e.catalog()
	if err != nil {
		return nil, err
	}

	raws, err := loader.LoadDataset(e.cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}

	e.log.Info("loaded dataset", "path", e.cfg.Dataset.Path, "records", len(raws))

	proc, err := normalizer.NewProcessor(catalog, normalizer.WithLogger(e.log.With("stage", "process")))
	if err != nil {
		return nil, err
	}

	return proc.Process(raws), nil
}

func runSummary(e *env) error {
	report, err := e.report()
	if err != nil {
		return err
	}

	return e.write([]byte(formatter.RenderMarkdown(report)))
}

func runExport(e *env) error {
	report, err := e.report()
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if e.cfg.Output.PrettyPrint {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return e.write(buf.Bytes())
}

// write sends data to output.path, or stdout when it is empty.
func (e *env) write(data []byte) error {
	path := e.cfg.Output.Path
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	e.log.Info("✅ saved", "path", path, "bytes", len(data))

	return nil
}
