package fetch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	body  string
	calls []string
}

func (s *stubFetcher) Fetch(_ context.Context, location string) ([]byte, error) {
	s.calls = append(s.calls, location)
	return []byte(s.body), nil
}

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pts.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,1,2"), 0o644))

	b, err := FileFetcher{}.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "A,1,2", string(b))

	b, err = FileFetcher{}.Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, "A,1,2", string(b))

	_, err = FileFetcher{}.Fetch(context.Background(), filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	h := &stubFetcher{body: "remote"}
	f := &stubFetcher{body: "local"}
	r := Router{HTTP: h, File: f}

	b, err := r.Fetch(context.Background(), "HTTPS://example.com/a.geojson")
	require.NoError(t, err)
	assert.Equal(t, "remote", string(b))

	b, err = r.Fetch(context.Background(), "./a.csv")
	require.NoError(t, err)
	assert.Equal(t, "local", string(b))

	assert.Equal(t, []string{"HTTPS://example.com/a.geojson"}, h.calls)
	assert.Equal(t, []string{"./a.csv"}, f.calls)

	_, err = Router{}.Fetch(context.Background(), "http://example.com")
	assert.Error(t, err)
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("http://x"))
	assert.True(t, IsRemote("https://x"))
	assert.False(t, IsRemote("/tmp/x.csv"))
	assert.False(t, IsRemote("file:///tmp/x.csv"))
}
