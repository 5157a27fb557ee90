package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/spellbee/internal/puzzle"
	"github.com/robalobadob/spellbee/internal/solver"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	letters, err := puzzle.New('a', []rune("bcdefg"))
	require.NoError(t, err)
	key := Key(letters, 4)

	_, err = st.Get(ctx, key)
	assert.True(t, errors.Is(err, ErrNotFound))

	res := &solver.Result{Letters: letters, TotalPoints: 7}
	require.NoError(t, st.Save(ctx, key, res))

	got, err := st.Get(ctx, key)
	require.NoError(t, err)
	assert.Same(t, res, got)
	assert.Equal(t, 1, st.Len())
}

func TestKey(t *testing.T) {
	a, err := puzzle.New('a', []rune("gfedcb"))
	require.NoError(t, err)
	b, err := puzzle.New('a', []rune("bcdefg"))
	require.NoError(t, err)

	assert.Equal(t, Key(a, 4), Key(b, 4))
	assert.NotEqual(t, Key(a, 4), Key(a, 5))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := string(rune('a' + i))
			_ = st.Save(ctx, key, &solver.Result{TotalPoints: i})
			_, _ = st.Get(ctx, key)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, st.Len())
}
