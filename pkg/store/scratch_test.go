package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScratchRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	_, ok, err := s.ReadScratch()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.WriteScratch("draft in progress"))

	content, ok, err := s.ReadScratch()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "draft in progress", content)
}

func TestScratchSingleSlot(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.WriteScratch("first"))
	require.NoError(t, s.WriteScratch("second"))

	content, ok, err := s.ReadScratch()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", content)
}

func TestClearScratch(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.WriteScratch("draft"))
	require.NoError(t, s.ClearScratch())

	_, ok, err := s.ReadScratch()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an absent scratch entry is fine.
	require.NoError(t, s.ClearScratch())
}

func TestScratchNotListed(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.WriteScratch("hidden draft"))

	files, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, files)
}
