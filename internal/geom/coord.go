package geom

import (
	"regexp"
	"strconv"
	"strings"
)

// sexagesimal matches DDMMSS(.s)H and DDDMMSS(.s)H.
var sexagesimal = regexp.MustCompile(`^(\d{2,3})(\d{2})(\d{2}(?:\.\d+)?)([NSEWnsew])$`)

// decimal matches plain signed decimals with an optional exponent. Go
// literal forms such as hex floats, underscores, Inf and NaN do not match.
var decimal = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// ParseCoordinate converts a coordinate token to signed decimal degrees.
// Accepted notations are plain decimals ("35.5", "-139") and sexagesimal
// with a hemisphere suffix ("242621.02N", "1231508.36E"). No range check is
// applied here.
func ParseCoordinate(token string) (float64, bool) {
	s := strings.TrimSpace(token)
	if s == "" || s == "undefined" {
		return 0, false
	}
	if m := sexagesimal.FindStringSubmatch(s); m != nil {
		deg, err1 := strconv.Atoi(m[1])
		mins, err2 := strconv.Atoi(m[2])
		secs, err3 := strconv.ParseFloat(m[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, false
		}
		v := float64(deg) + float64(mins)/60 + secs/3600
		switch strings.ToUpper(m[4]) {
		case "S", "W":
			v = -v
		}
		return v, true
	}
	if !decimal.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
