package geom

import "strings"

// roleHeaders lists, per role, the header names that select a column.
var roleHeaders = map[Role][]string{
	RoleName: {"name", "label", "title"},
	RoleLat:  {"lat", "latitude", "y"},
	RoleLon:  {"lon", "lng", "long", "longitude", "x"},
}

// HeaderMap maps each role to a column index.
type HeaderMap struct {
	Name int
	Lat  int
	Lon  int
}

// DefaultHeaderMap is the positional layout name,lat,lon.
var DefaultHeaderMap = HeaderMap{Name: 0, Lat: 1, Lon: 2}

// Width is the minimum number of cells a row needs.
func (h HeaderMap) Width() int {
	return max(h.Name, h.Lat, h.Lon) + 1
}

func roleOf(cell string) (Role, bool) {
	c := strings.ToLower(strings.TrimSpace(cell))
	for _, r := range []Role{RoleName, RoleLat, RoleLon} {
		for _, alias := range roleHeaders[r] {
			if c == alias {
				return r, true
			}
		}
	}
	return 0, false
}

// ResolveHeader assigns columns to roles. Matching is case-insensitive and
// the first matching column wins; roles with no matching header (or a nil
// header) fall back to DefaultHeaderMap.
func ResolveHeader(header []string) HeaderMap {
	hm := DefaultHeaderMap
	found := map[Role]bool{}
	for i, cell := range header {
		r, ok := roleOf(cell)
		if !ok || found[r] {
			continue
		}
		found[r] = true
		switch r {
		case RoleName:
			hm.Name = i
		case RoleLat:
			hm.Lat = i
		case RoleLon:
			hm.Lon = i
		}
	}
	return hm
}

// LooksLikeHeader reports whether row should be read as a header: a
// positional lat or lon cell holds text that is not a coordinate. A row
// whose coordinate cells parse or are blank is data, whatever its name
// cell says, so it is validated (and rejected if need be) like any other.
func LooksLikeHeader(row []string) bool {
	d := DefaultHeaderMap
	for _, i := range []int{d.Lat, d.Lon} {
		if i >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}
		if _, ok := ParseCoordinate(cell); !ok {
			return true
		}
	}
	return false
}
