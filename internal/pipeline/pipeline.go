/*
Package pipeline runs one pass over the GMP page: fetch, locate the table,
evaluate each row and dispatch alerts for offerings closing today.
*/
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/net/html"

	"github.com/shanehull/gmpwatch/internal/gmp"
	"github.com/shanehull/gmpwatch/internal/notify"
	"github.com/shanehull/gmpwatch/internal/types"
)

// PageFetcher returns the parsed page at url.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*html.Node, error)
}

type Pipeline struct {
	url       string
	threshold float64
	schema    gmp.Schema
	fetcher   PageFetcher
	notifier  notify.Sender
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

func WithURL(url string) Option {
	return func(p *Pipeline) { p.url = url }
}

func WithThreshold(threshold float64) Option {
	return func(p *Pipeline) { p.threshold = threshold }
}

func WithSchema(schema gmp.Schema) Option {
	return func(p *Pipeline) { p.schema = schema }
}

// WithClock replaces time.Now. It is read once per run.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

func New(fetcher PageFetcher, notifier notify.Sender, opts ...Option) *Pipeline {
	p := &Pipeline{
		url:       gmp.PageURL,
		threshold: 10,
		schema:    gmp.DefaultSchema,
		fetcher:   fetcher,
		notifier:  notifier,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes the page once. A fetch or table failure is reported through
// the notifier and returned; no rows are processed in that case. Row-level
// problems never end the run and show up in the report instead.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	now := p.now()

	doc, err := p.fetcher.Fetch(ctx, p.url)
	if err != nil {
		return nil, p.fatal(ctx, err)
	}

	table, err := gmp.FirstTable(doc)
	if err != nil {
		return nil, p.fatal(ctx, fmt.Errorf("%w at %s", err, p.url))
	}

	report := &Report{}
	for rec := range p.schema.Records(table) {
		report.Outcomes = append(report.Outcomes, p.processRow(ctx, rec, now))
	}

	p.logger.Info("run complete",
		"rows", len(report.Outcomes),
		"alerted", report.Count(StatusAlerted),
		"failed", report.Count(StatusFailed),
		"threshold", p.threshold,
	)
	return report, nil
}

func (p *Pipeline) fatal(ctx context.Context, err error) error {
	p.logger.Error("run aborted", "error", err)
	if sendErr := p.notifier.Send(ctx, "GMP watch failed: "+err.Error()); sendErr != nil {
		p.logger.Error("failed to deliver failure alert", "error", sendErr)
	}
	return err
}

func (p *Pipeline) processRow(ctx context.Context, rec types.OfferingRecord, now time.Time) (out RowOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = RowOutcome{Record: rec, Status: StatusFailed, Err: fmt.Errorf("panic processing row: %v", r)}
			p.logger.Error("row processing failed",
				"name", rec.Name,
				"premium", rec.PremiumText,
				"closing", rec.ClosingDateText,
				"error", out.Err,
			)
		}
	}()

	out = p.Evaluate(rec, now)
	if out.Status != StatusAlerted {
		return out
	}

	if err := p.notifier.Send(ctx, out.Alert.Message()); err != nil {
		out.Err = err
		p.logger.Error("failed to deliver alert", "name", rec.Name, "error", err)
		return out
	}
	p.logger.Info("alert dispatched", "name", rec.Name, "gain", out.Gain)
	return out
}

// Evaluate decides whether rec warrants an alert on the day of now. It does
// not dispatch anything.
func (p *Pipeline) Evaluate(rec types.OfferingRecord, now time.Time) RowOutcome {
	out := RowOutcome{Record: rec, Status: StatusSkipped}

	closing, ok := gmp.ClosingDate(rec.ClosingDateText, now.Year())
	if !ok {
		out.Reason = SkipDateUnparsed
		p.logger.Debug("skipping row with unreadable closing date", "name", rec.Name, "closing", rec.ClosingDateText)
		return out
	}

	if !gmp.SameDay(closing, now) {
		out.Reason = SkipNotClosingToday
		p.logger.Debug("offering not closing today", "name", rec.Name, "closing", closing.Format(time.DateOnly))
		return out
	}

	gain, alert, err := gmp.EvaluateGain(rec.PremiumText, p.threshold)
	switch {
	case errors.Is(err, gmp.ErrNoPercent):
		out.Reason = SkipNoPercent
		p.logger.Warn("premium has no percent sign", "name", rec.Name, "premium", rec.PremiumText)
		return out
	case err != nil:
		out.Reason = SkipGainUnparsed
		p.logger.Warn("premium is not a number", "name", rec.Name, "premium", rec.PremiumText)
		return out
	}

	out.Gain = gain
	if !alert {
		out.Reason = SkipBelowThreshold
		p.logger.Debug("gain below threshold", "name", rec.Name, "gain", gain, "threshold", p.threshold)
		return out
	}

	out.Status = StatusAlerted
	out.Alert = &types.Alert{Name: rec.Name, Gain: gain}
	return out
}
