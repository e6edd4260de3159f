package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicekeeper/internal/model"
)

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Save(ctx, "k", []byte("v1")))
	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, s.Save(ctx, "k", []byte("v2")))
	got, err = s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestStore_LoadMissingKey(t *testing.T) {
	s := New()
	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStore_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Save(ctx, "k", []byte("abc")))

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
