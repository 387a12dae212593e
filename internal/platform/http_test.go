package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPPlatform_StartURLRequest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x: 1"))
	}))
	defer srv.Close()

	p := NewHTTPPlatform()

	var wg sync.WaitGroup
	wg.Add(1)
	var body []byte
	p.StartURLRequest(context.Background(), srv.URL, func(b []byte) {
		body = b
		wg.Done()
	})
	waitOrTimeout(t, &wg, time.Second)

	assert.Equal(t, "x: 1", string(body))
}

func TestHTTPPlatform_StartURLRequest_FailureYieldsEmptyBuffer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewHTTPPlatform()

	var wg sync.WaitGroup
	wg.Add(1)
	var body []byte
	called := false
	p.StartURLRequest(context.Background(), srv.URL, func(b []byte) {
		body = b
		called = true
		wg.Done()
	})
	waitOrTimeout(t, &wg, time.Second)

	require.True(t, called)
	assert.Empty(t, body)
}

func waitOrTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("timed out waiting for callback")
	}
}
