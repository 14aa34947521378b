package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(LoadCycles.WithLabelValues("ready"))
	LoadCycles.WithLabelValues("ready").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(LoadCycles.WithLabelValues("ready")))

	before = testutil.ToFloat64(RecordsRejected.WithLabelValues("row too short"))
	RecordsRejected.WithLabelValues("row too short").Add(2)
	assert.Equal(t, before+2, testutil.ToFloat64(RecordsRejected.WithLabelValues("row too short")))
}

func TestServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr) }()

	PointsAccepted.Inc()
	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Contains(t, string(body), "waymap_points_accepted_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}
