package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"waymap/internal/fetch"
	"waymap/internal/geom"
	"waymap/internal/metrics"
)

// Orchestrator runs load cycles against a fetcher. Callers serialise cycles;
// the orchestrator only tracks the state of the latest one.
type Orchestrator struct {
	fetcher fetch.Fetcher

	mu    sync.Mutex
	state State
}

// New creates an Orchestrator.
func New(f fetch.Fetcher) *Orchestrator {
	return &Orchestrator{fetcher: f}
}

// State returns the state of the current or last cycle.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) transition(to State) {
	o.mu.Lock()
	from := o.state
	o.state = to
	o.mu.Unlock()
	zap.L().Debug("load state", zap.Stringer("from", from), zap.Stringer("to", to))
}

// Run performs one full cycle for src and reports the result to r (which
// may be nil). Only transport and unreadable-document failures end in
// StateFailed; record level failures are collected in Outcome.Rejected.
func (o *Orchestrator) Run(ctx context.Context, src Source, r Renderer) Outcome {
	o.transition(StateIdle)
	log := zap.L().With(zap.String("source", src.Location), zap.String("type", string(src.Type)))
	log.Info("load cycle started")

	o.transition(StateFetching)
	start := time.Now()
	data, err := o.fetcher.Fetch(ctx, src.Location)
	metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return o.fail(src, r, transportFailure(err))
	}
	return o.process(src, data, r)
}

// RunData performs a cycle on data already in hand, skipping retrieval.
func (o *Orchestrator) RunData(src Source, data []byte, r Renderer) Outcome {
	o.transition(StateIdle)
	return o.process(src, data, r)
}

func (o *Orchestrator) process(src Source, data []byte, r Renderer) Outcome {
	log := zap.L().With(zap.String("source", src.Location), zap.String("type", string(src.Type)))

	o.transition(StateParsing)
	cands, err := Adapt(src.Type, data, src.Header)
	if err != nil {
		return o.fail(src, r, &Failure{
			Kind:   FailureParse,
			Reason: fmt.Sprintf("parse error: %v", err),
			Err:    err,
		})
	}

	o.transition(StateValidating)
	points, rejected := geom.Split(cands)
	for _, r := range rejected {
		log.Debug("record rejected",
			zap.Int("index", r.Index),
			zap.String("reason", r.Reason),
			zap.String("detail", r.Detail),
		)
		metrics.RecordsRejected.WithLabelValues(r.Reason).Inc()
	}
	coll := geom.Build(points)

	o.transition(StateReady)
	out := Outcome{
		Source:     src,
		State:      StateReady,
		Collection: coll,
		Rejected:   rejected,
		Records:    len(cands),
	}
	metrics.PointsAccepted.Add(float64(coll.Len()))
	metrics.LoadCycles.WithLabelValues(out.Label()).Inc()

	if coll.Empty() {
		log.Warn("no valid points", zap.Int("records", len(cands)), zap.Int("rejected", len(rejected)))
	} else {
		log.Info("load cycle ready", zap.Int("points", coll.Len()), zap.Int("rejected", len(rejected)))
	}
	if r != nil {
		r.Render(coll)
		if coll.Empty() {
			r.ReportEmpty(len(cands), len(rejected))
		} else {
			r.FitView(coll.Extent)
		}
	}
	return out
}

func (o *Orchestrator) fail(src Source, r Renderer, f *Failure) Outcome {
	o.transition(StateFailed)
	zap.L().Error("load cycle failed",
		zap.String("source", src.Location),
		zap.String("reason", f.Reason),
		zap.Error(f.Err),
	)
	metrics.LoadCycles.WithLabelValues("failed").Inc()
	if r != nil {
		r.ReportFailure(f)
	}
	return Outcome{Source: src, State: StateFailed, Failure: f}
}

func transportFailure(err error) *Failure {
	f := &Failure{Kind: FailureTransport, Err: err}
	var se *fetch.StatusError
	if errors.As(err, &se) {
		f.StatusCode = se.Code
		f.Status = se.Status
		f.Reason = fmt.Sprintf("transport error: HTTP %d %s", se.Code, se.Status)
		return f
	}
	f.Reason = fmt.Sprintf("transport error: %v", err)
	return f
}
