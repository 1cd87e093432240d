package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/captaingang"
	"github.com/fwojciec/captaingang/pretty"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Captain    string        `short:"c" required:"" help:"USTA player ID of the captain to analyze"`
	BaseURL    string        `name:"base-url" default:"https://leagues.ustanorcal.com/" help:"League site address"`
	Timeout    time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Delay      time.Duration `default:"1s" help:"Minimum pause between a response and the next request"`
	Retries    int           `default:"0" help:"Retries for a failed fetch, with exponential backoff"`
	Vocabulary string        `type:"path" help:"YAML file extending the words that are never player names"`
	Browser    bool          `help:"Fetch pages with headless Chrome"`
	Verbose    bool          `short:"v" help:"Log extraction details"`
}

// AnalyzeCmd runs an analysis and prints its report.
type AnalyzeCmd struct {
	Captain  string
	Analyzer captaingang.Analyzer
}

// Run analyzes the captain and writes the report to w.
func (c *AnalyzeCmd) Run(ctx context.Context, w io.Writer) error {
	result, err := c.Analyzer.Analyze(ctx, c.Captain)
	if err != nil {
		return fmt.Errorf("analyzing captain %s: %w", c.Captain, err)
	}
	return pretty.WriteReport(w, result)
}
