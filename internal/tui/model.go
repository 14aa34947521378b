package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"waymap/internal/geom"
	"waymap/internal/ingest"
	"waymap/internal/mapview"
)

// Options configures the terminal map.
type Options struct {
	Source      ingest.Source
	View        mapview.Options
	MarkerColor string
}

type attrsMode int

const (
	attrsPoints attrsMode = iota
	attrsRejected
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	view *mapview.View

	status string

	// Load cycle
	orch       *ingest.Orchestrator
	source     ingest.Source
	loading    bool
	state      ingest.State
	fitPending *geom.Extent

	// File explorer
	cwd   string
	l     list.Model
	items []list.Item

	// Data
	coll     geom.PointCollection
	rejected []geom.RejectedRecord
	records  int

	// last rendered map size in cells
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverIdx    int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// attributes table
	showAttrs bool
	attrsMode attrsMode
	tbl       table.Model

	styles styles
}

// New creates the map model. The first load cycle starts from Init when a
// source location is configured.
func New(orch *ingest.Orchestrator, opts Options) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		view:        mapview.New(opts.View),
		status:      "waymap ready",
		orch:        orch,
		source:      opts.Source,
		hoverIdx:    -1,
		styles:      newStyles(opts.MarkerColor),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Sources"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste name,lat,lon rows here. Press Ctrl+S to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns depend on the table shown)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	if orch != nil && m.source.Location != "" {
		// Init starts this cycle; mark it in flight so reload waits for it
		m.loading = true
		m.state = ingest.StateFetching
		m.status = "loading " + displayName(m.source.Location) + " ..."
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return m.loadCmd()
}

// View state accessors, mainly for the rendering tests.
func (m Model) Zoom() int                        { return m.view.Zoom }
func (m Model) Collection() geom.PointCollection { return m.coll }
func (m Model) State() ingest.State              { return m.state }
