package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Pacer applies the inter-request delay: a uniform random duration in
// [min, max]. Randomizing the delay avoids a fixed request cadence
// against the origin server.
type Pacer struct {
	min      time.Duration
	max      time.Duration
	disabled bool
	logger   *slog.Logger
}

// NewPacer creates a Pacer. When disabled is set, Wait returns
// immediately.
func NewPacer(min, max time.Duration, disabled bool, logger *slog.Logger) *Pacer {
	if max < min {
		max = min
	}
	return &Pacer{min: min, max: max, disabled: disabled, logger: logger}
}

// Wait sleeps for the next delay interval, or until the context is
// canceled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.disabled {
		return nil
	}
	delay := p.min
	if span := p.max - p.min; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span) + 1))
	}
	if delay <= 0 {
		return nil
	}
	p.logger.Debug("waiting", "delay", delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// String describes the pacing for log output.
func (p *Pacer) String() string {
	if p.disabled {
		return "disabled"
	}
	return fmt.Sprintf("%s-%s", p.min, p.max)
}
