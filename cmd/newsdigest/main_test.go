package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/repository"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("DB_PATH", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wd, err := os.Getwd()
	require.NoError(t, err)
	opts := Opts{Config: filepath.Join(wd, "testdata", "test_config.yml")}

	serverErr := make(chan error, 1)
	go func() { serverErr <- run(ctx, opts) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18765/ping") //nolint:noctx // test request
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond, "server is not responding")

	resp, err := http.Get("http://127.0.0.1:18765/api/v1/digests?owner=nobody") //nolint:noctx // test request
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]\n", string(body))

	cancel()
	select {
	case err := <-serverErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestRun_GenerateOnce(t *testing.T) {
	pub := time.Now().Add(-time.Hour).Format(time.RFC1123Z)
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Test</title>
<item><title>Budget approved after late vote</title><link>https://www.ft.com/content/budget</link>
<description>&lt;p&gt;Parliament approved the budget.&lt;/p&gt;</description><pubDate>%s</pubDate></item>
<item><title>Rail strike called off</title><link>https://news.example.com/rail</link><pubDate>%s</pubDate></item>
</channel></rss>`, pub, pub)
	}))
	defer feedSrv.Close()

	llmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"test-model","choices":[{"index":0,`+
			`"message":{"role":"assistant","content":"{\"digest_title\":\"Budget week\",\"articles\":[`+
			`{\"index\":0,\"headline\":\"Budget passes\",\"subtitle\":\"Late vote\",\"summary\":\"It passed.\",`+
			`\"importance\":9,\"category\":\"national\"}]}"},"finish_reason":"stop"}]}`)
	}))
	defer llmSrv.Close()

	dir := t.TempDir()
	dsn := "file:" + filepath.Join(dir, "gen.db") + "?mode=rwc&_txlock=immediate"
	cfg := fmt.Sprintf(`
database:
  dsn: %q
llm:
  endpoint: %q
  model: "test-model"
sources:
  national:
    - name: "Test Times"
      url: %q
      leaning: centre
`, dsn, llmSrv.URL+"/v1", feedSrv.URL)
	configPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, run(ctx, Opts{Config: configPath, Generate: "alice"}))

	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)
	defer func() { assert.NoError(t, repos.Close()) }()

	d, err := repos.Digest.LatestReadyDigest(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "The TebPaper", d.Title)
	assert.Equal(t, "Budget week", d.Subtitle)

	arts, err := repos.Digest.GetDigestArticles(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, "Budget passes", arts[0].Title)
	assert.Equal(t, "https://www.ft.com/content/budget", arts[0].OriginalURL)
	assert.True(t, arts[0].Paywalled)
	require.NotNil(t, arts[0].ArchiveURL)
	assert.Equal(t, "https://archive.today/newest/https://www.ft.com/content/budget", *arts[0].ArchiveURL)

	p, err := repos.Profile.GetProfile(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, p.LastDigestAt, "watermark set")
	assert.Equal(t, domain.LeaningCentre, p.Leaning)

	t.Run("anonymous paper", func(t *testing.T) {
		require.NoError(t, run(ctx, Opts{Config: configPath, Anonymous: "centre-left"}))
		err := run(ctx, Opts{Config: configPath, Anonymous: "nowhere"})
		require.ErrorContains(t, err, "invalid leaning")
	})
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "secret2")
	})
}
