package pipeline

import (
	"github.com/shanehull/gmpwatch/internal/types"
)

type Status int

const (
	StatusSkipped Status = iota
	StatusAlerted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusAlerted:
		return "alerted"
	case StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// SkipReason says why a row produced no alert.
type SkipReason string

const (
	SkipNone            SkipReason = ""
	SkipDateUnparsed    SkipReason = "date_unparsed"
	SkipNotClosingToday SkipReason = "not_closing_today"
	SkipNoPercent       SkipReason = "no_percent"
	SkipGainUnparsed    SkipReason = "gain_unparsed"
	SkipBelowThreshold  SkipReason = "below_threshold"
)

// RowOutcome records what happened to one table row. Err is set for failed
// rows and for alerts whose delivery failed.
type RowOutcome struct {
	Record types.OfferingRecord
	Status Status
	Reason SkipReason
	Gain   float64
	Alert  *types.Alert
	Err    error
}

// Report is the result of one run.
type Report struct {
	Outcomes []RowOutcome
}

// Alerts lists the messages dispatched for matching rows, in table order.
func (r *Report) Alerts() []string {
	if r == nil {
		return nil
	}
	var msgs []string
	for _, o := range r.Outcomes {
		if o.Status == StatusAlerted && o.Alert != nil {
			msgs = append(msgs, o.Alert.Message())
		}
	}
	return msgs
}

// Count returns how many rows ended with the given status.
func (r *Report) Count(s Status) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}
