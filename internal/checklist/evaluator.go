package checklist

import (
	"math"

	"go.uber.org/zap"
)

// Result is the outcome of evaluating a checklist.
type Result struct {
	// Score is the rounded percentage of passing checks, 0-100.
	Score int

	// Criteria maps each check ID to whether it passed.
	Criteria map[string]bool
}

// Passed returns the number of passing checks.
func (r Result) Passed() int {
	n := 0
	for _, ok := range r.Criteria {
		if ok {
			n++
		}
	}
	return n
}

// Evaluator applies a set of checks to an artifact set.
type Evaluator struct {
	checks []*Check
	logger *zap.Logger
}

// NewEvaluator creates an evaluator over the given checks.
func NewEvaluator(checks []*Check, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		checks: checks,
		logger: logger.Named("checklist"),
	}
}

// Evaluate runs every check and computes the score. It is total over any
// input, including empty artifacts.
func (e *Evaluator) Evaluate(in Input) Result {
	criteria := make(map[string]bool, len(e.checks))
	passed := 0

	for _, c := range e.checks {
		ok := c.Pass(in)
		criteria[c.ID] = ok
		if ok {
			passed++
		} else {
			e.logger.Debug("check failed", zap.String("check", c.ID))
		}
	}

	return Result{
		Score:    Score(passed, len(e.checks)),
		Criteria: criteria,
	}
}

// Score returns round(100 * passed / total), or 0 for an empty checklist.
func Score(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}
