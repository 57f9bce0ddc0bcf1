package consumer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethograph/internal/model"
)

func feedEvent(i int) *model.Event {
	return &model.Event{Id: fmt.Sprintf("evt-%d", i), BehaviorLabel: "Pacing"}
}

func TestFeedLatestNewestFirst(t *testing.T) {
	f := NewFeed(8)
	for i := 0; i < 3; i++ {
		f.Push(feedEvent(i))
	}

	latest := f.Latest(2)
	require.Len(t, latest, 2)
	assert.Equal(t, "evt-2", latest[0].Id)
	assert.Equal(t, "evt-1", latest[1].Id)
	assert.Equal(t, 3, f.Len())
}

func TestFeedWrapsAround(t *testing.T) {
	f := NewFeed(4)
	for i := 0; i < 10; i++ {
		f.Push(feedEvent(i))
	}

	assert.Equal(t, 4, f.Len())
	latest := f.Latest(0)
	require.Len(t, latest, 4)
	assert.Equal(t, "evt-9", latest[0].Id)
	assert.Equal(t, "evt-6", latest[3].Id)
}

func TestFeedLatestMoreThanBuffered(t *testing.T) {
	f := NewFeed(8)
	f.Push(feedEvent(1))

	assert.Len(t, f.Latest(100), 1)
	assert.Empty(t, NewFeed(8).Latest(5))
}

func TestFeedDefaultCapacity(t *testing.T) {
	f := NewFeed(0)
	f.Push(feedEvent(1))
	assert.Equal(t, 1, f.Len())
}
