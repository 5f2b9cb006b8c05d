package schema_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleset/pkg/schema"
)

var usersColumns = []schema.Column{
	{Property: "login", Length: 30, ColumnCount: 1},
	{Property: "age", Precision: 10, ColumnCount: 1},
}

func TestMemoryProvider(t *testing.T) {
	t.Parallel()

	p := schema.NewMemoryProvider(map[string][]schema.Column{"users": usersColumns})

	cols, err := p.Columns(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, usersColumns, cols)

	cols[0].Length = 1
	again, err := p.Columns(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, 30, again[0].Length, "callers get copies")

	missing, err := p.Columns(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, missing)

	_, err = p.Columns(context.Background(), "")
	assert.ErrorIs(t, err, schema.ErrEmptyTable)

	p.Set("orders", schema.Column{Property: "total", ColumnCount: 1})
	orders, err := p.Columns(context.Background(), "orders")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestIndex(t *testing.T) {
	t.Parallel()

	idx := schema.Index(usersColumns)
	assert.Len(t, idx, 2)
	assert.Equal(t, 30, idx["login"].Length)
}

type countingProvider struct {
	calls atomic.Int64
	err   error
}

func (p *countingProvider) Columns(context.Context, string) ([]schema.Column, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return usersColumns, nil
}

type fakeStore struct {
	mu      sync.Mutex
	data    map[string][]schema.Column
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	getHits int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]schema.Column{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(_ context.Context, table string) ([]schema.Column, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	cols, ok := s.data[table]
	if ok {
		s.getHits++
	}
	return cols, ok, nil
}

func (s *fakeStore) Set(_ context.Context, table string, cols []schema.Column, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[table] = cols
	s.ttls[table] = ttl
	return nil
}

func TestCachedProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("memoizes locally", func(t *testing.T) {
		t.Parallel()

		next := &countingProvider{}
		p := schema.NewCachedProvider(next)

		for range 3 {
			cols, err := p.Columns(ctx, "users")
			require.NoError(t, err)
			assert.Equal(t, usersColumns, cols)
		}
		assert.Equal(t, int64(1), next.calls.Load())

		p.Invalidate("users")
		_, err := p.Columns(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, int64(2), next.calls.Load())
	})

	t.Run("writes through and reads from store", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		next := &countingProvider{}
		first := schema.NewCachedProvider(next, schema.WithStore(store), schema.WithCacheTTL(time.Hour))

		_, err := first.Columns(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, time.Hour, store.ttls["users"])

		second := schema.NewCachedProvider(next, schema.WithStore(store))
		cols, err := second.Columns(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, usersColumns, cols)
		assert.Equal(t, int64(1), next.calls.Load())
		assert.Equal(t, 1, store.getHits)
	})

	t.Run("store failures fall through", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		store.getErr = errors.New("read down")
		store.setErr = errors.New("write down")
		next := &countingProvider{}
		p := schema.NewCachedProvider(next, schema.WithStore(store), schema.WithCacheSize(1))

		cols, err := p.Columns(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, usersColumns, cols)
		assert.Equal(t, int64(1), next.calls.Load())
	})

	t.Run("provider errors are not cached", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		next := &countingProvider{err: boom}
		p := schema.NewCachedProvider(next)

		_, err := p.Columns(ctx, "users")
		require.ErrorIs(t, err, boom)
		_, err = p.Columns(ctx, "users")
		require.ErrorIs(t, err, boom)
		assert.Equal(t, int64(2), next.calls.Load())
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		_, err := schema.NewCachedProvider(&countingProvider{}).Columns(ctx, "")
		assert.ErrorIs(t, err, schema.ErrEmptyTable)
	})
}
