package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdraft/newsdraft/pkg/store"
	"github.com/newsdraft/newsdraft/server/mocks"
)

func TestServer_New(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}

	srv := New(cfg, &mocks.ArticleGeneratorMock{}, &mocks.ScriptGeneratorMock{}, &mocks.ArchiveMock{}, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}

	archive := &mocks.ArchiveMock{
		ListArticlesFunc: func(ctx context.Context, limit int) ([]store.ArticleRecord, error) {
			return []store.ArticleRecord{}, nil
		},
	}

	srv := New(cfg, &mocks.ArticleGeneratorMock{}, &mocks.ScriptGeneratorMock{}, archive, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start server in background
	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	// ping middleware answers without touching handlers
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	// routed endpoint served through the full middleware chain
	listResp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/articles", port))
	require.NoError(t, err)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	assert.Len(t, archive.ListArticlesCalls(), 1)

	// shutdown server
	cancel()
	time.Sleep(100 * time.Millisecond)
}
