package operators

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"proxy-lattice/internal/directory"
)

// countingDirectory counts lookups on top of a real directory.
type countingDirectory struct {
	*directory.Directory
	calls atomic.Int32
	err   error
	// during runs inside every lookup, after the directory was read.
	during func()
}

func (c *countingDirectory) GroupMembers(ctx context.Context, group string) ([]directory.User, error) {
	c.calls.Add(1)
	if c.during != nil {
		defer c.during()
	}

	if c.err != nil {
		return nil, c.err
	}

	return c.Directory.GroupMembers(ctx, group)
}

func newDirectory(t *testing.T, groups map[string][]string, users ...directory.User) *countingDirectory {
	t.Helper()

	d, err := directory.New(directory.File{Users: users, Groups: groups})
	require.NoError(t, err)

	return &countingDirectory{Directory: d}
}

func TestItems_SortedWithLabelFallback(t *testing.T) {
	dir := newDirectory(t,
		map[string][]string{DefaultGroup: {"b", "a"}},
		directory.User{ID: "b", Fullname: ""},
		directory.User{ID: "a", Fullname: "A"},
	)

	items, err := NewService(dir).Items(context.Background(), "")
	require.NoError(t, err)

	want := []Item{{Value: "a", Label: "A"}, {Value: "b", Label: "b"}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
}

func TestItems_MissingGroupFallsBackToAdmin(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	svc := NewService(newDirectory(t, nil), WithLogger(zap.New(core)))

	items, err := svc.Items(context.Background(), DefaultGroup)
	require.NoError(t, err)
	assert.Equal(t, []Item{{Value: "admin", Label: "admin"}}, items)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, DefaultGroup, entry.ContextMap()["group"])
}

func TestItems_DirectoryError(t *testing.T) {
	dir := newDirectory(t, nil)
	dir.err = errors.New("ldap down")

	_, err := NewService(dir).Items(context.Background(), "x")
	require.EqualError(t, err, "ldap down")
}

func TestItems_Cache(t *testing.T) {
	dir := newDirectory(t, map[string][]string{"g": {"u1"}})
	svc := NewService(dir, WithCache(8, time.Minute))

	for range 3 {
		_, err := svc.Items(context.Background(), "g")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), dir.calls.Load())

	svc.Purge()

	_, err := svc.Items(context.Background(), "g")
	require.NoError(t, err)
	assert.Equal(t, int32(2), dir.calls.Load())
}

func TestItems_PurgeDuringLookupIsNotUndone(t *testing.T) {
	dir := newDirectory(t, map[string][]string{"g": {"u1"}})
	svc := NewService(dir, WithCache(8, time.Minute))

	purged := false
	dir.during = func() {
		if !purged {
			purged = true
			svc.Purge()
		}
	}

	_, err := svc.Items(context.Background(), "g")
	require.NoError(t, err)
	require.True(t, purged)

	_, err = svc.Items(context.Background(), "g")
	require.NoError(t, err)
	assert.Equal(t, int32(2), dir.calls.Load())

	_, err = svc.Items(context.Background(), "g")
	require.NoError(t, err)
	assert.Equal(t, int32(2), dir.calls.Load())
}

func TestItems_NoCache(t *testing.T) {
	dir := newDirectory(t, map[string][]string{"g": {"u1"}})
	svc := NewService(dir, WithCache(0, 0))

	for range 2 {
		_, err := svc.Items(context.Background(), "g")
		require.NoError(t, err)
	}

	svc.Purge()
	assert.Equal(t, int32(2), dir.calls.Load())
}

func TestItems_FallbackIsNotCached(t *testing.T) {
	dir := newDirectory(t, nil)
	svc := NewService(dir)

	for range 2 {
		_, err := svc.Items(context.Background(), "missing")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), dir.calls.Load())
}

func TestWithDefaultGroup(t *testing.T) {
	assert.Equal(t, "tecnici", NewService(nil, WithDefaultGroup("tecnici")).DefaultGroup())
	assert.Equal(t, DefaultGroup, NewService(nil, WithDefaultGroup("")).DefaultGroup())
}
