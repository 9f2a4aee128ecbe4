package inmemory

import (
	"context"
	"testing"
	"time"

	"postsvc/internal/model"
	"postsvc/internal/service"

	"github.com/stretchr/testify/require"
)

func TestPostBus_FanOut(t *testing.T) {
	t.Parallel()

	bus := New(4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := bus.Subscribe(ctx)
	second := bus.Subscribe(ctx)

	ev := service.Event{Type: service.EventPostLiked, Post: model.Post{ID: 1, Likes: 1}}
	require.NoError(t, bus.Publish(context.Background(), ev))

	for _, ch := range []<-chan service.Event{first, second} {
		select {
		case got := <-ch:
			require.Equal(t, ev, got)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestPostBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	bus := New(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := bus.Subscribe(ctx)

	for i := range 3 {
		require.NoError(t, bus.Publish(context.Background(), service.Event{Post: model.Post{ID: int64(i + 1)}}))
	}

	got := <-ch
	require.Equal(t, int64(1), got.Post.ID)
}

func TestPostBus_UnsubscribeOnCancel(t *testing.T) {
	t.Parallel()

	bus := New(0)

	ctx, cancel := context.WithCancel(context.Background())
	ch := bus.Subscribe(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}

	require.NoError(t, bus.Publish(context.Background(), service.Event{}))
}
