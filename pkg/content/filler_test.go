package content

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/content/mocks"
	"github.com/umputun/newsdigest/pkg/domain"
)

func TestFiller_FillSummaries(t *testing.T) {
	ext := &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (string, error) {
		switch url {
		case "https://example.com/ok":
			return "  Ministers   agreed\n the deal late on Tuesday.  ", nil
		case "https://example.com/fail":
			return "", errors.New("blocked")
		}
		t.Errorf("unexpected extraction of %s", url)
		return "", nil
	}}

	in := []domain.RawArticle{
		{Title: "has summary", Link: "https://example.com/skip", Summary: "kept"},
		{Title: "needs summary", Link: "https://example.com/ok"},
		{Title: "fails", Link: "https://example.com/fail"},
		{Title: "no link"},
	}
	res := NewFiller(ext, 2, 600).FillSummaries(context.Background(), in)

	require.Len(t, res, 4)
	assert.Equal(t, "kept", res[0].Summary)
	assert.Equal(t, "Ministers agreed the deal late on Tuesday.", res[1].Summary)
	assert.Empty(t, res[2].Summary)
	assert.Empty(t, res[3].Summary)
	assert.Len(t, ext.ExtractCalls(), 2)
	assert.Empty(t, in[1].Summary, "input not modified")
}

func TestFiller_Concurrency(t *testing.T) {
	var inflight, peak int32
	ext := &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (string, error) {
		n := atomic.AddInt32(&inflight, 1)
		defer atomic.AddInt32(&inflight, -1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return "text", nil
	}}

	in := make([]domain.RawArticle, 10)
	for i := range in {
		in[i] = domain.RawArticle{Link: "https://example.com/" + string(rune('a'+i))}
	}
	res := NewFiller(ext, 3, 100).FillSummaries(context.Background(), in)
	for _, a := range res {
		assert.Equal(t, "text", a.Summary)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestFiller_CancelledContext(t *testing.T) {
	ext := &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (string, error) {
		return "text", nil
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewFiller(ext, 1, 100).FillSummaries(ctx, []domain.RawArticle{{Link: "https://example.com/a"}})
	assert.Empty(t, res[0].Summary)
	assert.Empty(t, ext.ExtractCalls())
}

func TestFiller_snippet(t *testing.T) {
	f := NewFiller(nil, 1, 20)
	assert.Equal(t, "short text", f.snippet("short\n\ttext"))
	assert.Equal(t, "the quick brown fox...", f.snippet("the quick brown fox jumps over the lazy dog"))

	long := strings.Repeat("x", 30)
	assert.Equal(t, strings.Repeat("x", 20)+"...", f.snippet(long))

	assert.Equal(t, long, NewFiller(nil, 1, 0).snippet(long), "no limit")
}
