package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/tsawler/giftcsv"
	"github.com/tsawler/giftcsv/config"
	"github.com/tsawler/giftcsv/export"
	"github.com/tsawler/giftcsv/format"
	"github.com/tsawler/giftcsv/model"
	"github.com/tsawler/giftcsv/pgstore"
)

type direction int

const (
	giftToCSV direction = iota
	csvToGift
)

func (d direction) String() string {
	if d == csvToGift {
		return "csv-to-gift"
	}
	return "gift-to-csv"
}

var errUsage = errors.New("usage")

func parseDirection(s string) (direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gift-to-csv", "gift-to-excel":
		return giftToCSV, nil
	case "csv-to-gift", "excel-to-gift":
		return csvToGift, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (want gift-to-csv or csv-to-gift)", s)
	}
}

type convertFlags struct {
	input           string
	output          string
	direction       string
	format          string
	encoding        string
	delimiter       string
	extendedLetters bool
	header          bool
	crlf            bool
	pgDSN           string
	pgTable         string
	configPath      string
	logLevel        string
}

// apply overlays flags given on the command line onto cfg.
func (f convertFlags) apply(cfg *config.Config) error {
	if f.encoding != "" {
		cfg.Input.Encoding = f.encoding
	}
	if f.extendedLetters {
		cfg.Convert.ExtendedLetters = true
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.delimiter != "" {
		cfg.Output.Delimiter = f.delimiter
	}
	if f.header {
		cfg.Output.Header = true
	}
	if f.crlf {
		cfg.Output.CRLF = true
	}
	if f.pgDSN != "" {
		cfg.Postgres.DSN = f.pgDSN
	}
	if f.pgTable != "" {
		cfg.Postgres.Table = f.pgTable
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	return cfg.Validate()
}

// runConvert builds the handler for the convert command.
func runConvert(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		var opts convertFlags
		flags := flag.NewFlagSet("convert", flag.ContinueOnError)
		flags.SetOutput(stderr)
		flags.StringVar(&opts.input, "i", "", "input file")
		flags.StringVar(&opts.input, "input", "", "input file")
		flags.StringVar(&opts.output, "o", "", "output file, or - for stdout")
		flags.StringVar(&opts.output, "output", "", "output file, or - for stdout")
		flags.StringVar(&opts.direction, "d", "", "gift-to-csv or csv-to-gift")
		flags.StringVar(&opts.direction, "direction", "", "gift-to-csv or csv-to-gift")
		flags.StringVar(&opts.format, "f", "", "output format: csv, tsv, jsonl, yaml")
		flags.StringVar(&opts.format, "format", "", "output format: csv, tsv, jsonl, yaml")
		flags.StringVar(&opts.encoding, "encoding", "", "input character set (default auto)")
		flags.StringVar(&opts.delimiter, "delimiter", "", "field delimiter for csv output")
		flags.BoolVar(&opts.extendedLetters, "extended-letters", false, "allow correct answers past C")
		flags.BoolVar(&opts.header, "header", false, "write a header row")
		flags.BoolVar(&opts.crlf, "crlf", false, "end rows with CRLF")
		flags.StringVar(&opts.pgDSN, "pg-dsn", "", "also store questions in PostgreSQL")
		flags.StringVar(&opts.pgTable, "pg-table", "", "PostgreSQL table name")
		flags.StringVar(&opts.configPath, "config", "", "YAML config file")
		flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %v\n", flags.Args())
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if opts.input == "" || opts.output == "" || opts.direction == "" {
			fmt.Fprintln(stderr, "input, output and direction are required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		dir, err := parseDirection(opts.direction)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}

		cfg, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		if err := opts.apply(cfg); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}

		logger := newLogger(cfg.Log, stderr)

		if dir == csvToGift {
			logger.Info("conversion direction not implemented, nothing written",
				"direction", dir.String(),
				"input", opts.input)
			return ExitOK
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := convertGift(ctx, cfg, opts.input, opts.output, stdout, logger); err != nil {
			logger.Error("conversion failed", "input", opts.input, "error", err)
			fmt.Fprintf(stderr, "error: %v\n", err)
			if errors.Is(err, errUsage) {
				return ExitUsage
			}
			return ExitError
		}
		return ExitOK
	}
}

func convertGift(ctx context.Context, cfg *config.Config, input, output string, stdout io.Writer, logger *slog.Logger) error {
	conv := giftcsv.Open(input).Encoding(cfg.Input.Encoding)
	if cfg.Convert.ExtendedLetters {
		conv = conv.ExtendedLetters()
	}

	exportCfg, err := exportConfig(cfg.Output, output)
	if err != nil {
		return err
	}

	doc, warnings, err := conv.Document()
	for _, w := range warnings {
		logger.Warn(w.Message, "input", input, "line", w.Line)
	}
	if err != nil {
		return err
	}
	exportCfg.Source = doc.Source

	exporter := export.NewExporterWithConfig(exportCfg)
	if output == "-" {
		err = exporter.Export(doc.Questions, stdout)
	} else {
		err = exporter.ExportToFile(doc.Questions, output)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	logger.Info("converted",
		"input", input,
		"output", output,
		"format", exportCfg.Format.String(),
		"questions", doc.QuestionCount())

	if cfg.Postgres.DSN != "" {
		return store(ctx, cfg.Postgres, doc, logger)
	}
	return nil
}

// exportConfig picks the output format from the configured name, then the
// output file extension, then falls back to CSV. A .txt output gets CSV
// rather than being rejected as GIFT.
func exportConfig(out config.OutputConfig, output string) (export.ExportConfig, error) {
	f := format.Unknown
	if out.Format != "" {
		parsed, err := format.Parse(out.Format)
		if err != nil {
			return export.ExportConfig{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		f = parsed
	} else if output != "-" {
		if detected := format.Detect(output); detected != format.GIFT {
			f = detected
		}
	}
	if f == format.Unknown {
		f = format.CSV
	}

	exportCfg, err := export.ConfigFor(f)
	if err != nil {
		return export.ExportConfig{}, fmt.Errorf("%w: %v", errUsage, err)
	}

	delim, err := out.DelimiterRune()
	if err != nil {
		return export.ExportConfig{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	if delim != 0 {
		exportCfg.Delimiter = delim
	}
	exportCfg.IncludeHeader = exportCfg.IncludeHeader || out.Header
	exportCfg.UseCRLF = out.CRLF
	return exportCfg, nil
}

func store(ctx context.Context, cfg config.PostgresConfig, doc *model.Document, logger *slog.Logger) error {
	pool, err := pgstore.Connect(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	s := pgstore.New(pool, cfg.Table)
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}
	n, err := s.Replace(ctx, doc.Source, doc.Questions)
	if err != nil {
		return err
	}

	logger.Info("stored questions", "table", cfg.Table, "rows", n)
	return nil
}
