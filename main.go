// swift-workbench composes, validates and parses SWIFT MT messages.
//
// With no mode flag it starts the interactive terminal UI. The mode flags
// (--sample, --validate, --parse, --save, --copy, --iban, --bic) run a single operation
// and exit, for use from scripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"swift-workbench/artifact"
	"swift-workbench/clipboard"
	"swift-workbench/download"
	"swift-workbench/models"
	"swift-workbench/swift"
	"swift-workbench/tui"
	"swift-workbench/ui"
	"swift-workbench/utils"
)

// exitError carries a process exit status without an error message.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func (e exitError) ExitCode() int { return e.code }

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configFile string
	outputDir  string
	logFile    string
	logLevel   string

	sample       bool
	validateFile string
	parseFile    string
	output       string
	saveFile     string
	copyFile     string
	iban         string
	bic          string
}

func (o options) interactive() bool {
	return !o.sample && o.validateFile == "" && o.parseFile == "" && o.saveFile == "" && o.copyFile == "" &&
		o.iban == "" && o.bic == ""
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("swift-workbench", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configFile, "config", "", "path to a YAML configuration file")
	flagSet.StringVar(&opts.outputDir, "output-dir", "", "directory saved messages are written to (default \".\")")
	flagSet.StringVar(&opts.logFile, "log-file", "", "append diagnostic logs to this file")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.BoolVar(&opts.sample, "sample", false, "print the sample MT940 message and exit")
	flagSet.StringVar(&opts.validateFile, "validate", "", "validate the message in FILE (exit status 2 when invalid)")
	flagSet.StringVar(&opts.parseFile, "parse", "", "parse the message in FILE and print the fields as YAML")
	flagSet.StringVarP(&opts.output, "output", "o", "", "write the --parse report to this file instead of stdout")
	flagSet.StringVar(&opts.saveFile, "save", "", "save the message in FILE to the output directory")
	flagSet.StringVar(&opts.copyFile, "copy", "", "copy the message in FILE to the clipboard")
	flagSet.StringVar(&opts.iban, "iban", "", "check the format of an IBAN (exit status 2 when invalid)")
	flagSet.StringVar(&opts.bic, "bic", "", "check the format of a BIC/SWIFT code (exit status 2 when invalid)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := loadConfig(opts, flagSet)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, opts.interactive(), stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	clip := clipboard.New(cfg.ClipboardTTY)
	saver := download.NewDirSaver(cfg.OutputDir)

	switch {
	case opts.sample:
		fmt.Fprintln(stdout, artifact.SampleMessage)
		return nil
	case opts.validateFile != "":
		return runValidate(stdout, opts.validateFile)
	case opts.parseFile != "":
		return runParse(stdout, opts.parseFile, opts.output)
	case opts.saveFile != "":
		return runSave(stdout, cfg, saver, logger, opts.saveFile)
	case opts.copyFile != "":
		return runCopy(stdout, cfg, clip, logger, opts.copyFile)
	case opts.iban != "" || opts.bic != "":
		return runCodes(stdout, opts.iban, opts.bic)
	}

	return tui.Run(tui.Options{
		Config:    *cfg,
		Clipboard: clip,
		Saver:     saver,
		Logger:    logger,
	})
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(opts options, flagSet *pflag.FlagSet) (*models.Config, error) {
	cfg := models.DefaultConfig
	if opts.configFile != "" {
		loaded, err := models.LoadConfig(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if flagSet.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if flagSet.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newLogger writes to the log file when one is configured. Otherwise the
// TUI discards logs so the alt screen stays clean, and command-line mode
// logs warnings to stderr.
func newLogger(cfg *models.Config, interactive bool, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		return logger, func() { f.Close() }, nil
	}

	if interactive {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: max(level, slog.LevelWarn)})), func() {}, nil
}

func runValidate(stdout io.Writer, filename string) error {
	text, err := utils.ReadMessageFile(filename)
	if err != nil {
		return err
	}

	result := swift.Validate(text)
	ui.PrintValidation(stdout, filename, result)
	if !result.Valid {
		return exitError{code: 2}
	}
	return nil
}

func runCodes(stdout io.Writer, iban, bic string) error {
	results, err := swift.ValidateCodes(iban, bic)
	if err != nil {
		return err
	}

	ui.PrintCodes(stdout, results)
	for _, r := range results {
		if !r.Valid {
			return exitError{code: 2}
		}
	}
	return nil
}

func runParse(stdout io.Writer, filename, output string) error {
	text, err := utils.ReadMessageFile(filename)
	if err != nil {
		return err
	}

	result, err := swift.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	writer := utils.NewYAMLWriter()
	if output == "" {
		return writer.WriteParseResult(stdout, filename, result)
	}
	if err := writer.WriteParseResultFile(output, filename, result); err != nil {
		return err
	}
	ui.PrintNotice(stdout, fmt.Sprintf("Parse report written to %s", output))
	return nil
}

func runSave(stdout io.Writer, cfg *models.Config, saver artifact.Saver, logger *slog.Logger, filename string) error {
	text, err := utils.ReadMessageFile(filename)
	if err != nil {
		return err
	}

	exporter := artifact.NewExporter(nil, saver, nil,
		artifact.WithFilename(cfg.Filename),
		artifact.WithLogger(logger),
	)
	receipt, err := exporter.DownloadMessage(artifact.Surfaces{Output: artifact.StaticText(text)})
	if err != nil {
		return err
	}
	ui.PrintReceipt(stdout, receipt)
	return nil
}

func runCopy(stdout io.Writer, cfg *models.Config, clip artifact.Clipboard, logger *slog.Logger, filename string) error {
	text, err := utils.ReadMessageFile(filename)
	if err != nil {
		return err
	}

	notifier := artifact.NotifierFunc(func(message string) {
		ui.PrintNotice(stdout, message)
	})
	exporter := artifact.NewExporter(clip, nil, notifier,
		artifact.WithFilename(cfg.Filename),
		artifact.WithLogger(logger),
	)

	task := exporter.CopyMessage(artifact.Surfaces{Output: artifact.StaticText(text)})
	outcome := <-artifact.Go(context.Background(), task)
	if outcome.Err != nil {
		// Already logged by the exporter.
		return exitError{code: 1}
	}
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	ui.PrintBanner(w)
	fmt.Fprint(w, `
Starts the interactive workbench when no mode flag is given. In the
workbench, ctrl+l loads a sample message, ctrl+s validates or composes,
ctrl+y copies the result to the clipboard and ctrl+o saves it as a file.

Usage:
  swift-workbench [flags]

Examples:
  # Validate a message from a script
  swift-workbench --validate payment.txt

  # Write the parsed fields of a statement to a YAML report
  swift-workbench --parse statement.txt -o statement.yml

  # Check an IBAN and a BIC
  swift-workbench --iban DE89370400440532013000 --bic DEUTDEFFXXX

  # Save a message into ./exports
  swift-workbench --save payment.txt --output-dir exports

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
