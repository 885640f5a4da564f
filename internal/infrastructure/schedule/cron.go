package schedule

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Trigger runs the reminder sweep on a cron schedule. The sweep itself takes
// no input; every run is a full scan.
type Trigger struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewTrigger creates a cron trigger for the given sweep function
func NewTrigger(spec string, sweep func(ctx context.Context) error, logger *zap.Logger) (*Trigger, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		logger.Info("scheduled reminder sweep starting", zap.String("cron", spec))
		if err := sweep(context.Background()); err != nil {
			logger.Error("scheduled reminder sweep failed", zap.Error(err))
			return
		}
		logger.Info("scheduled reminder sweep completed")
	})
	if err != nil {
		return nil, err
	}

	return &Trigger{cron: c, logger: logger}, nil
}

// Start begins firing on schedule
func (t *Trigger) Start() {
	t.cron.Start()
}

// Stop stops the schedule and waits for a running sweep to finish
func (t *Trigger) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
}
