package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveSuccess(t *testing.T) {
	r := NewRecorder()

	r.Observe("cli", time.Now().Add(-2*time.Second), 4, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.LastRunSuccess.WithLabelValues("cli")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.Assignments.WithLabelValues("cli")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(r.LastRunDuration.WithLabelValues("cli")), 2.0)
	assert.Greater(t, testutil.ToFloat64(r.LastRunTimestamp.WithLabelValues("cli")), 0.0)
}

func TestRecorder_ObserveFailure(t *testing.T) {
	r := NewRecorder()

	r.Observe("cli", time.Now(), 4, errors.New("boom"))

	assert.Equal(t, 0.0, testutil.ToFloat64(r.LastRunSuccess.WithLabelValues("cli")))
	assert.Equal(t, 0, testutil.CollectAndCount(r.Assignments), "count only recorded on success")
}

func TestRecorder_Push(t *testing.T) {
	var (
		method string
		path   string
		body   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		method = req.Method
		path = req.URL.Path
		b, _ := io.ReadAll(req.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewRecorder()
	r.Observe("env-file", time.Now(), 2, nil)

	err := r.Push(context.Background(), srv.URL, "secretsync", map[string]string{"target": "proj-123", "empty": ""})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/secretsync/target/proj-123", path)
	assert.NotEmpty(t, body)
}

func TestRecorder_PushError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewRecorder()
	r.Observe("cli", time.Now(), 1, nil)

	assert.Error(t, r.Push(context.Background(), srv.URL, "secretsync", nil))
}
