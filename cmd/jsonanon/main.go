// Command jsonanon anonymizes the sensitive identifiers of every JSON file in
// a directory, rewriting the files in place.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/arloliu/jsonxl/anonymize"
	"github.com/arloliu/jsonxl/batch"
	"github.com/arloliu/jsonxl/config"
)

type cliOptions struct {
	dir         string
	configPath  string
	metricsFile string
	logLevel    string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:           "jsonanon [flags]",
		Short:         "Anonymize sensitive identifiers in JSON files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, out, opts)
		},
	}

	bindFlags(cmd.Flags(), &opts)

	return cmd
}

func bindFlags(f *pflag.FlagSet, opts *cliOptions) {
	f.SortFlags = false
	f.StringVarP(&opts.dir, "dir", "d", "", "directory to process (default: "+config.DefaultAnonymizerDir+")")
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus counters to this textfile after the run")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
}

func resolveConfig(opts cliOptions) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.dir != "" {
		cfg.Anonymizer.Dir = opts.dir
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.metricsFile != "" {
		cfg.Metrics.Textfile = opts.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(_ *cobra.Command, out io.Writer, opts cliOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	metrics := batch.NewMetrics()
	if cfg.Metrics.Textfile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
				logger.Error("failed to write metrics textfile", zap.String("path", cfg.Metrics.Textfile), zap.Error(werr))
			}
		}()
	}

	anon, err := anonymize.New(anonymize.WithLogger(logger))
	if err != nil {
		return err
	}

	driver, err := batch.NewAnonymizer(anon, batch.WithLogger(logger), batch.WithMetrics(metrics))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "JSON anonymizer")
	fmt.Fprintln(out, "===============")
	fmt.Fprintf(out, "Target directory: %s\n", cfg.Anonymizer.Dir)
	fmt.Fprintf(out, "Sensitive fields: %s\n", strings.Join(anonymize.SensitiveFields, ", "))
	fmt.Fprintln(out)

	res, err := driver.Dir(cfg.Anonymizer.Dir)
	if err != nil {
		fmt.Fprintln(out, "Processing failed")
		return err
	}

	stats := anon.Generator().Stats()
	fmt.Fprintf(out, "Succeeded: %d\n", res.Success)
	fmt.Fprintf(out, "Failed: %d\n", res.Failed)
	for _, f := range res.Failures {
		fmt.Fprintf(out, "  %s: %v\n", f.Path, f.Err)
	}
	if stats.Collisions > 0 {
		fmt.Fprintf(out, "Collisions: %d\n", stats.Collisions)
		for _, c := range anon.Generator().Collisions() {
			fmt.Fprintf(out, "  %s %s <- %q, %q\n", c.Field, c.Anonymized, c.First, c.Second)
		}
	}
	fmt.Fprintln(out, "Anonymization complete")

	return nil
}
