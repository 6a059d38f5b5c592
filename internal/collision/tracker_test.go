package collision

import (
	"testing"

	"github.com/arloliu/jsonxl/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Collisions())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	collided, err := tracker.Track("skuId", "sku-1", "anon-1")
	require.NoError(t, err)
	require.False(t, collided)

	collided, err = tracker.Track("skuId", "sku-2", "anon-2")
	require.NoError(t, err)
	require.False(t, collided)

	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_EmptyOriginal(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("skuId", "", "anon-1")
	require.ErrorIs(t, err, errs.ErrEmptyOriginal)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("skuId", "Aa", "anon-840")
	require.NoError(t, err)

	collided, err := tracker.Track("skuId", "BB", "anon-840")
	require.NoError(t, err)
	require.True(t, collided)
	require.True(t, tracker.HasCollision())
	require.Equal(t, []Collision{{Field: "skuId", Anonymized: "anon-840", First: "Aa", Second: "BB"}}, tracker.Collisions())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Track_SameValueDifferentField(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("skuId", "Aa", "anon-840")
	require.NoError(t, err)

	collided, err := tracker.Track("productId", "BB", "anon-840")
	require.NoError(t, err)
	require.False(t, collided)
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("skuId", "sku-1", "anon-1")
	require.NoError(t, err)

	collided, err := tracker.Track("skuId", "sku-1", "anon-1")
	require.ErrorIs(t, err, errs.ErrDuplicateOriginal)
	require.False(t, collided)
	require.False(t, tracker.HasCollision())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	_, _ = tracker.Track("skuId", "Aa", "anon-840")
	_, _ = tracker.Track("skuId", "BB", "anon-840")
	require.True(t, tracker.HasCollision())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Collisions())
}
