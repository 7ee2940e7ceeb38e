package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB makes in-memory repositories, single connection keeps the memory database shared
func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestRepositories_Ping(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))
	require.NotNil(t, repos.Digest)
	require.NotNil(t, repos.Profile)

	var fk int
	require.NoError(t, repos.DB.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)
}

func TestDsnParams(t *testing.T) {
	tbl := []struct {
		dsn, want string
	}{
		{":memory:", ":memory:?_time_format=sqlite&_pragma=foreign_keys(1)"},
		{"file:x.db?mode=rwc", "file:x.db?mode=rwc&_time_format=sqlite&_pragma=foreign_keys(1)"},
		{"file:x.db?_time_format=sqlite&_pragma=foreign_keys(0)", "file:x.db?_time_format=sqlite&_pragma=foreign_keys(0)"},
	}
	for _, tt := range tbl {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, dsnParams(tt.dsn))
		})
	}
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.False(t, isLockError(assert.AnError))
	assert.True(t, isLockError(&criticalError{err: errString("database is locked (5) (SQLITE_BUSY)")}))
	assert.True(t, isLockError(errString("database table is locked")))
}

func TestWithLockRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return lockOrCritical(errString("database is locked"))
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on critical error", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), func() error {
			calls++
			return lockOrCritical(errString("constraint failed"))
		})
		require.Error(t, err)
		assert.Equal(t, "constraint failed", err.Error())
		assert.Equal(t, 1, calls)
	})
}

type errString string

func (e errString) Error() string { return string(e) }
