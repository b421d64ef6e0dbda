package updates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNewer(t *testing.T) {
	assert.True(t, IsNewer("2.4.0", "2.3.1"))
	assert.True(t, IsNewer("v3.0.0", "2.3.1"))
	assert.True(t, IsNewer("2.3.1.1", "2.3.1"))
	assert.False(t, IsNewer("2.3.1", "2.3.1"))
	assert.False(t, IsNewer("2.3.0", "2.3.1"))
	assert.False(t, IsNewer("1.9.9", "2.0.0"))
	assert.False(t, IsNewer("garbage", "2.3.1"))
}

func TestLatestParsesRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v2.4.0","name":"Release 2.4.0","html_url":"https://example.com","prerelease":false}`))
	}))
	defer server.Close()

	c := NewChecker("owner/repo")
	c.Client = server.Client()
	// Point the request at the test server through its transport.
	c.Client.Transport = rewriteHost(server.URL)

	release, err := c.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, release)
	assert.Equal(t, "2.4.0", release.Version())
	assert.Equal(t, "Release 2.4.0", release.Name)
}

func TestLatestNoReleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewChecker("owner/repo")
	c.Client = server.Client()
	c.Client.Transport = rewriteHost(server.URL)

	release, err := c.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, release)
}

func TestLatestRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"tag_name":"v2.4.0"}`))
	}))
	defer server.Close()

	c := NewChecker("owner/repo")
	c.Client = server.Client()
	c.Client.Transport = rewriteHost(server.URL)

	release, err := c.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, release)
	assert.Equal(t, 3, calls)
}

type hostRewriter struct {
	target string
	next   http.RoundTripper
}

func rewriteHost(target string) http.RoundTripper {
	return hostRewriter{target: target, next: http.DefaultTransport}
}

func (h hostRewriter) RoundTrip(req *http.Request) (*http.Response, error) {
	rewritten, err := http.NewRequestWithContext(req.Context(), req.Method, h.target+req.URL.Path, req.Body)
	if err != nil {
		return nil, err
	}
	rewritten.Header = req.Header
	return h.next.RoundTrip(rewritten)
}
