// Package fetch retrieves raw source documents over HTTP(S) or from local files.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Fetcher retrieves the full body of a source.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// StatusError is returned when a retrieval completes with a non-success status.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d %s from %s", e.Code, e.Status, e.URL)
}

// FileFetcher reads local files. Locations may be plain paths or file:// URLs.
type FileFetcher struct{}

// Fetch reads the whole file.
func (FileFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "file fetch")
	}
	path := location
	if strings.HasPrefix(location, "file://") {
		u, err := url.Parse(location)
		if err != nil {
			return nil, eris.Wrapf(err, "file fetch: parse %s", location)
		}
		path = u.Path
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "file fetch: %s", path)
	}
	return b, nil
}

// Router dispatches http and https locations to HTTP and everything else to File.
type Router struct {
	HTTP Fetcher
	File Fetcher
}

// Fetch retrieves location with the fetcher matching its scheme.
func (r Router) Fetch(ctx context.Context, location string) ([]byte, error) {
	if IsRemote(location) {
		if r.HTTP == nil {
			return nil, eris.Errorf("fetch: no http fetcher for %s", location)
		}
		return r.HTTP.Fetch(ctx, location)
	}
	if r.File == nil {
		return FileFetcher{}.Fetch(ctx, location)
	}
	return r.File.Fetch(ctx, location)
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
