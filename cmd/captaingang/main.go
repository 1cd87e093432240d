package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/captaingang"
	"github.com/fwojciec/captaingang/analyze"
	"github.com/fwojciec/captaingang/goquery"
	cghttp "github.com/fwojciec/captaingang/http"
	"github.com/fwojciec/captaingang/rod"
	cgslog "github.com/fwojciec/captaingang/slog"
	"github.com/fwojciec/captaingang/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the fetcher built from flags. Set before calling Run().
	Fetcher captaingang.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("captaingang"),
		kong.Description("Analyze USTA captain teams and player appearances"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	vocabulary, err := yaml.LoadVocabulary(cli.Vocabulary)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}
	logger.Debug("vocabulary",
		"labels", vocabulary.Labels.Words(),
		"stopwords", vocabulary.Stopwords.Words(),
		"captain_labels", vocabulary.CaptainLabels.Words(),
	)

	fetcher, err := m.fetcher(cli, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	selectors := goquery.DefaultSelectors().WithBaseURL(cli.BaseURL)
	analyzer := &analyze.Analyzer{
		Fetcher:  cgslog.NewLoggingFetcher(fetcher, logger),
		Profiles: cgslog.NewLoggingProfileExtractor(goquery.NewProfileExtractor(selectors, vocabulary), logger),
		Rosters:  cgslog.NewLoggingRosterExtractor(goquery.NewRosterExtractor(selectors, vocabulary), logger),
		BaseURL:  cli.BaseURL,
		Logger:   logger,
	}

	cmd := &AnalyzeCmd{
		Captain:  cli.Captain,
		Analyzer: analyzer,
	}
	return cmd.Run(ctx, stdout)
}

// fetcher builds the fetcher selected by the flags.
func (m *Main) fetcher(cli *CLI, stderr io.Writer) (captaingang.Fetcher, error) {
	fetcher := m.Fetcher
	if fetcher == nil && cli.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(cghttp.DefaultUserAgent),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = cghttp.NewPacedFetcher(f, cli.Delay)
	} else if fetcher == nil {
		fetcher = cghttp.NewPacedFetcher(cghttp.NewFetcher(cghttp.WithTimeout(cli.Timeout)), cli.Delay)
	}

	if cli.Retries > 0 {
		fetcher = cghttp.NewRetryFetcher(fetcher, cghttp.BackoffDelays(cli.Retries))
	}
	return fetcher, nil
}

// newLogger returns a text logger on w tagged with a per-run id.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}
