package validation

import (
	"context"

	"github.com/carson-networks/cashier-shifts/internal/logging"
)

// Pipeline runs its checks in order and stops at the first rejection.
type Pipeline struct {
	checks []Check
}

func NewPipeline(checks ...Check) *Pipeline {
	return &Pipeline{checks: checks}
}

func (p *Pipeline) Run(ctx context.Context, req Request) error {
	logData := logging.GetLogData(ctx)
	for _, check := range p.checks {
		endTimer := logData.AddToExistingTiming("check." + check.Name())
		err := check.Run(ctx, req)
		endTimer()
		if err != nil {
			logData.AddData("rejectedBy", check.Name())
			return err
		}
	}
	return nil
}

// Names lists the checks in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.checks))
	for i, check := range p.checks {
		names[i] = check.Name()
	}
	return names
}
