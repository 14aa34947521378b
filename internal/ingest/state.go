package ingest

import (
	"fmt"

	"waymap/internal/geom"
)

// State is a load cycle state.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateParsing
	StateValidating
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateParsing:
		return "parsing"
	case StateValidating:
		return "validating"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether s ends a cycle.
func (s State) Terminal() bool { return s == StateReady || s == StateFailed }

// FailureKind classifies fatal cycle errors.
type FailureKind int

const (
	FailureTransport FailureKind = iota + 1
	FailureParse
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport error"
	case FailureParse:
		return "parse error"
	}
	return "unknown error"
}

// Failure is the diagnostic for a cycle that ended in StateFailed.
type Failure struct {
	Kind       FailureKind
	Reason     string
	StatusCode int
	Status     string
	Err        error
}

func (f *Failure) Error() string { return f.Reason }

func (f *Failure) Unwrap() error { return f.Err }

// Outcome is the result of one load cycle.
type Outcome struct {
	Source     Source
	State      State
	Collection geom.PointCollection
	Rejected   []geom.RejectedRecord
	Records    int
	Failure    *Failure
}

// Empty reports a cycle that reached Ready without a single valid point.
func (o Outcome) Empty() bool {
	return o.State == StateReady && o.Collection.Empty()
}

// Label is the metrics/diagnostic label for the outcome.
func (o Outcome) Label() string {
	switch {
	case o.State == StateFailed:
		return "failed"
	case o.Empty():
		return "empty"
	}
	return "ready"
}

// Renderer is the collaborator that displays a finished cycle. It owns its
// own view state; the orchestrator only supplies data and a desired extent.
type Renderer interface {
	Render(c geom.PointCollection)
	FitView(e geom.Extent)
	ReportEmpty(records, rejected int)
	ReportFailure(f *Failure)
}
