package llm

import "context"

// Static is a fixed-response Client used in tests and offline runs.
type Static struct {
	GenerateResponse string
	GenerateErr      error
	EvaluateResponse string
	EvaluateErr      error

	// GenerateCalls and EvaluateCalls count issued operations so tests can
	// assert the concurrency gate.
	GenerateCalls int
	EvaluateCalls int
}

var _ Client = (*Static)(nil)

// GenerateText returns the configured passage or error.
func (s *Static) GenerateText(ctx context.Context, length int) (string, error) {
	s.GenerateCalls++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.GenerateResponse, s.GenerateErr
}

// EvaluateSummary returns the configured evaluator text or error.
func (s *Static) EvaluateSummary(ctx context.Context, original, summary string) (string, error) {
	s.EvaluateCalls++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.EvaluateResponse, s.EvaluateErr
}

// ValidateCredentials always succeeds.
func (s *Static) ValidateCredentials(ctx context.Context) error {
	return ctx.Err()
}
