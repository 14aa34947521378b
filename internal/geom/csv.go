package geom

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// HeaderMode controls how the first tabular row is interpreted.
type HeaderMode string

const (
	HeaderAuto    HeaderMode = "auto"
	HeaderPresent HeaderMode = "present"
	HeaderAbsent  HeaderMode = "absent"
)

// ParseTable splits comma-separated text into rows of trimmed cells.
// Carriage returns are dropped, a leading byte-order mark is stripped and
// blank lines are skipped. Quoted fields may contain commas and "" escapes
// but never span lines.
func ParseTable(text string) [][]string {
	text = stripBOM(strings.ReplaceAll(text, "\r", ""))
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(line))
	}
	return rows
}

func splitLine(line string) []string {
	var (
		cells  []string
		cell   strings.Builder
		quoted bool
	)
	rs := []rune(line)
	for i := 0; i < len(rs); i++ {
		ch := rs[i]
		switch {
		case ch == '"' && quoted && i+1 < len(rs) && rs[i+1] == '"':
			cell.WriteRune('"')
			i++
		case ch == '"':
			quoted = !quoted
		case ch == ',' && !quoted:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(ch)
		}
	}
	return append(cells, strings.TrimSpace(cell.String()))
}

func stripBOM(s string) string {
	out, _, err := transform.String(unicode.UTF8BOM.NewDecoder(), s)
	if err != nil {
		return strings.TrimPrefix(s, "\ufeff")
	}
	return out
}

// ReadCSV runs the tabular pipeline over text: rows are parsed, the header
// (if any) resolved and every data row validated in input order. Rejected
// rows are reported alongside accepted ones and never stop the batch.
func ReadCSV(text string, mode HeaderMode) (cands []Candidate, hm HeaderMap) {
	rows := ParseTable(text)
	if len(rows) == 0 {
		return nil, ResolveHeader(nil)
	}
	data := rows
	switch {
	case mode == HeaderPresent, mode != HeaderAbsent && LooksLikeHeader(rows[0]):
		hm = ResolveHeader(rows[0])
		data = rows[1:]
	default:
		hm = ResolveHeader(nil)
	}
	cands = make([]Candidate, 0, len(data))
	for i, row := range data {
		p, err := ValidateRow(row, hm, i)
		if err != nil {
			cands = append(cands, Candidate{Rejected: err})
			continue
		}
		cands = append(cands, Candidate{Point: p})
	}
	return cands, hm
}
