package tui

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"waymap/internal/geom"
	"waymap/internal/ingest"
)

// sink is the Renderer handed to the orchestrator. Cycles run off the UI
// goroutine, so it only records what was asked; the model applies it when
// the loadedMsg arrives.
type sink struct {
	coll     geom.PointCollection
	fit      *geom.Extent
	empty    bool
	records  int
	rejected int
	failure  *ingest.Failure
}

func (s *sink) Render(c geom.PointCollection) {
	s.coll = c
}

func (s *sink) FitView(e geom.Extent) { s.fit = &e }

func (s *sink) ReportEmpty(records, rejected int) {
	s.empty = true
	s.records, s.rejected = records, rejected
}

func (s *sink) ReportFailure(f *ingest.Failure) { s.failure = f }

type loadedMsg struct {
	out  ingest.Outcome
	sink *sink
}

// loadCmd runs one full cycle against the current source.
func (m Model) loadCmd() tea.Cmd {
	orch, src := m.orch, m.source
	return func() tea.Msg {
		s := &sink{}
		out := orch.Run(context.Background(), src, s)
		return loadedMsg{out: out, sink: s}
	}
}

// startLoad marks a cycle in flight. A second trigger while one is running
// is ignored.
func (m *Model) startLoad() tea.Cmd {
	if m.loading || m.orch == nil || m.source.Location == "" {
		return nil
	}
	m.loading = true
	m.state = ingest.StateFetching
	m.status = "loading " + displayName(m.source.Location) + " ..."
	return m.loadCmd()
}

// applyLoad replaces the displayed collection with a finished cycle.
func (m *Model) applyLoad(msg loadedMsg) {
	m.loading = false
	m.state = msg.out.State
	s := msg.sink
	// every cycle replaces the previous one, a failed cycle included
	m.coll = s.coll
	m.rejected = msg.out.Rejected
	m.records = msg.out.Records
	m.hoverIdx = -1
	m.inspectPopup = ""
	if s.failure != nil {
		if m.showAttrs {
			m.refreshAttrs()
		}
		m.status = "load failed: " + s.failure.Reason
		return
	}
	switch {
	case s.empty:
		m.status = fmt.Sprintf("no valid points in %s (%d records, %d rejected)",
			displayName(msg.out.Source.Location), s.records, s.rejected)
	default:
		m.status = fmt.Sprintf("loaded %s  points=%d rejected=%d",
			displayName(msg.out.Source.Location), m.coll.Len(), len(m.rejected))
	}
	if s.fit != nil {
		m.fitPending = s.fit
		m.applyFit()
	}
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// applyFit fits the view once the map size is known.
func (m *Model) applyFit() {
	if m.fitPending == nil {
		return
	}
	lay := m.layout()
	if m.width == 0 || m.height == 0 {
		return
	}
	m.view.Fit(*m.fitPending, lay.mapW*2, lay.mapH*4)
	m.fitPending = nil
}

// pasteLoad runs the pasted text through parsing and validation without a
// retrieval step.
func (m *Model) pasteLoad(text string) {
	s := &sink{}
	src := ingest.Source{Location: "paste", Type: ingest.SourceCSV, Header: m.source.Header}
	orch := m.orch
	if orch == nil {
		orch = ingest.New(nil)
	}
	out := orch.RunData(src, []byte(text), s)
	m.applyLoad(loadedMsg{out: out, sink: s})
}

func displayName(loc string) string {
	if loc == "paste" {
		return "pasted rows"
	}
	if b := filepath.Base(loc); b != "." && b != "/" {
		return b
	}
	return loc
}
