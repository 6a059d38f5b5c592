// Command json2xlsx converts JSON documents into xlsx workbooks.
//
// Usage:
//
//	json2xlsx -i data.json -o data.xlsx
//	json2xlsx -b [-i ./Examples] -o ./Outputs
//	json2xlsx data1.json out1.xlsx data2.json out2.xlsx
//	json2xlsx ./Examples ./Outputs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/arloliu/jsonxl/batch"
	"github.com/arloliu/jsonxl/config"
	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/tabular"
)

type cliOptions struct {
	input            string
	output           string
	batch            bool
	sheetName        string
	disableAutoWidth bool
	collectAll       bool
	configPath       string
	metricsFile      string
	logLevel         string
}

type mode uint8

const (
	modeSingle mode = iota + 1
	modeDir
	modePairs
)

type plan struct {
	mode  mode
	pairs []batch.Pair
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
		Use:   "json2xlsx [flags] [<input> <output>]...",
		Short: "Convert JSON documents into xlsx workbooks",
		Example: `  json2xlsx -i data.json -o output.xlsx
  json2xlsx -b -o ./Outputs
  json2xlsx -b -i ./Examples -o ./Outputs
  json2xlsx data1.json output1.xlsx data2.json output2.xlsx
  json2xlsx ./Examples ./Outputs
  json2xlsx -i data.json -o output.xlsx --sheet-name MyData`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := planConversion(opts, args)
			if err != nil {
				_ = cmd.Usage()
				return err
			}

			return run(cmd, out, opts, p)
		},
	}

	bindFlags(cmd.Flags(), &opts)

	return cmd
}

func bindFlags(f *pflag.FlagSet, opts *cliOptions) {
	f.SortFlags = false
	f.StringVarP(&opts.input, "input", "i", "", "input file or directory")
	f.StringVarP(&opts.output, "output", "o", "", "output file or directory")
	f.BoolVarP(&opts.batch, "batch", "b", false, "convert every JSON file in the input directory (default: current directory)")
	f.StringVar(&opts.sheetName, "sheet-name", "", "worksheet name (default: Data)")
	f.BoolVar(&opts.disableAutoWidth, "disable-auto-width", false, "keep default column widths")
	f.BoolVar(&opts.collectAll, "collect-all-series", false, "collect every time series array instead of the first")
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus counters to this textfile after the run")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// planConversion turns flags and positional arguments into the work to do.
func planConversion(opts cliOptions, args []string) (plan, error) {
	switch {
	case opts.batch:
		if len(args) > 0 {
			return plan{}, fmt.Errorf("%w: positional arguments cannot be combined with -b", errs.ErrInvalidArguments)
		}
		if opts.output == "" {
			return plan{}, fmt.Errorf("%w: batch mode requires an output directory (-o)", errs.ErrInvalidArguments)
		}
		in := opts.input
		if in == "" {
			in = "."
		}

		return plan{mode: modeDir, pairs: []batch.Pair{{In: in, Out: opts.output}}}, nil

	case opts.input != "" || opts.output != "":
		if len(args) > 0 {
			return plan{}, fmt.Errorf("%w: positional arguments cannot be combined with -i/-o", errs.ErrInvalidArguments)
		}
		if opts.input == "" || opts.output == "" {
			return plan{}, fmt.Errorf("%w: -i and -o must be given together", errs.ErrInvalidArguments)
		}

		return plan{mode: modeSingle, pairs: []batch.Pair{{In: opts.input, Out: opts.output}}}, nil

	case len(args) == 0:
		return plan{}, fmt.Errorf("%w: no input given", errs.ErrInvalidArguments)

	case len(args)%2 != 0:
		return plan{}, fmt.Errorf("%w: input and output paths must come in pairs, got %d paths",
			errs.ErrInvalidArguments, len(args))
	}

	pairs := make([]batch.Pair, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, batch.Pair{In: args[i], Out: args[i+1]})
	}
	if len(pairs) == 1 {
		return plan{mode: modeSingle, pairs: pairs}, nil
	}

	return plan{mode: modePairs, pairs: pairs}, nil
}

func resolveConfig(cmd *cobra.Command, opts cliOptions) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("sheet-name") {
		cfg.Converter.SheetName = opts.sheetName
	}
	if flags.Changed("disable-auto-width") {
		cfg.Converter.DisableAutoWidth = opts.disableAutoWidth
	}
	if flags.Changed("collect-all-series") {
		cfg.Converter.CollectAllSeries = opts.collectAll
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

func newConverter(cfg *config.Config, logger *zap.Logger, metrics *batch.Metrics) (*batch.Converter, error) {
	projector, err := tabular.NewProjector(
		tabular.WithMaxColumns(cfg.Converter.MaxColumns),
		tabular.WithCollectAllSeries(cfg.Converter.CollectAllSeries),
		tabular.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return batch.NewConverter(projector,
		batch.WithLogger(logger),
		batch.WithMetrics(metrics),
		batch.WithSheetName(cfg.Converter.SheetName),
		batch.WithAutoWidth(!cfg.Converter.DisableAutoWidth),
	)
}

func run(cmd *cobra.Command, out io.Writer, opts cliOptions, p plan) error {
	cfg, err := resolveConfig(cmd, opts)
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

	conv, err := newConverter(cfg, logger, metrics)
	if err != nil {
		return err
	}

	if p.mode == modeSingle {
		if isDir, _ := (batch.OSFS{}).IsDir(p.pairs[0].In); isDir {
			p.mode = modeDir
		}
	}

	var res batch.Result
	switch p.mode {
	case modeDir:
		res, err = conv.Dir(p.pairs[0].In, p.pairs[0].Out)
		if err != nil {
			return err
		}
	default:
		res = conv.Pairs(p.pairs)
	}

	printResult(out, res)

	if p.mode == modeSingle && res.Failed > 0 {
		return fmt.Errorf("conversion failed: %w", res.Err())
	}

	return nil
}

func printResult(out io.Writer, res batch.Result) {
	for _, f := range res.Failures {
		fmt.Fprintf(out, "failed: %s: %v\n", f.Path, f.Err)
	}
	fmt.Fprintf(out, "conversion finished: %d succeeded, %d failed\n", res.Success, res.Failed)
}
