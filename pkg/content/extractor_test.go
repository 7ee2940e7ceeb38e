package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storyPage = `<!DOCTYPE html>
<html>
<head><title>Chancellor sets out budget</title></head>
<body>
	<nav><a href="/">Home</a> <a href="/politics">Politics</a></nav>
	<article>
		<h1>Chancellor sets out budget</h1>
		<p>The chancellor told MPs that borrowing would fall over the next three years.</p>
		<p>Opposition parties said the plan relied on optimistic growth forecasts.</p>
	</article>
	<footer>Copyright News Ltd</footer>
</body>
</html>`

func newsServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "navigate", r.Header.Get("Sec-Fetch-Mode"))
		assert.NotEmpty(t, r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPExtractor_Extract(t *testing.T) {
	t.Run("story text", func(t *testing.T) {
		srv := newsServer(t, http.StatusOK, storyPage)
		text, err := NewHTTPExtractor(5*time.Second, "digest-test", 20).Extract(context.Background(), srv.URL+"/politics/budget")
		require.NoError(t, err)
		assert.Contains(t, text, "borrowing would fall")
		assert.Contains(t, text, "optimistic growth forecasts")
	})

	t.Run("user agent", func(t *testing.T) {
		var agent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(storyPage))
		}))
		defer srv.Close()

		_, err := NewHTTPExtractor(time.Second, "", 0).Extract(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, agent, "NewsDigest")
	})

	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusBadGateway} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := newsServer(t, status, storyPage)
			_, err := NewHTTPExtractor(time.Second, "", 0).Extract(context.Background(), srv.URL)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unexpected status code")
		})
	}

	t.Run("short text rejected", func(t *testing.T) {
		srv := newsServer(t, http.StatusOK, `<html><body><article><p>Live updates</p></article></body></html>`)
		_, err := NewHTTPExtractor(time.Second, "", 200).Extract(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too short")
	})
}

func TestHTTPExtractor_Extract_BadURL(t *testing.T) {
	ex := NewHTTPExtractor(time.Second, "", 0)
	for _, u := range []string{"", "www.example.com/story", "http://localhost:99999/story"} {
		_, err := ex.Extract(context.Background(), u)
		assert.Error(t, err, u)
	}
}

func TestHTTPExtractor_Extract_Deadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
			_, _ = w.Write([]byte(storyPage))
		}
	}))
	defer srv.Close()

	t.Run("extractor timeout", func(t *testing.T) {
		_, err := NewHTTPExtractor(50*time.Millisecond, "", 0).Extract(context.Background(), srv.URL)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("caller cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewHTTPExtractor(5*time.Second, "", 0).Extract(ctx, srv.URL)
		require.ErrorIs(t, err, context.Canceled)
	})
}
