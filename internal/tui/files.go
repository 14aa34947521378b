package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"waymap/internal/ingest"
)

type fileItem struct {
	title, desc string
	path        string
	typ         ingest.SourceType
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir lists the files in cwd whose extension maps to a source type.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		typ, ok := ingest.TypeForPath(name)
		if !ok {
			continue
		}
		items = append(items, fileItem{title: name, desc: string(typ), path: filepath.Join(m.cwd, name), typ: typ})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 && m.showSidebar {
		m.status = "no csv, geojson or kml files in " + m.cwd
	}
}

// openFile switches the source to a local file and starts a cycle.
func (m *Model) openFile(it fileItem) tea.Cmd {
	if m.loading {
		m.status = "load in progress"
		return nil
	}
	m.source = ingest.Source{Location: it.path, Type: it.typ, Header: m.source.Header}
	return m.startLoad()
}

func sourceLabel(src ingest.Source) string {
	if src.Location == "" {
		return "no source"
	}
	return strings.ToLower(string(src.Type)) + ":" + displayName(src.Location)
}
