package mock

import (
	"context"

	"github.com/fwojciec/captaingang"
)

var _ captaingang.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of captaingang.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, captainID string) (*captaingang.AnalysisResult, error)
}

func (a *Analyzer) Analyze(ctx context.Context, captainID string) (*captaingang.AnalysisResult, error) {
	return a.AnalyzeFn(ctx, captainID)
}
