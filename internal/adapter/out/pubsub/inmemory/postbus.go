package inmemory

import (
	"context"
	"sync"

	"postsvc/internal/service"
)

// PostBus fans post events out to in-process subscribers. A subscriber that
// is not keeping up misses events rather than blocking publishers.
type PostBus struct {
	mu   sync.RWMutex
	subs map[chan service.Event]struct{}
	buf  int
}

var _ service.EventPublisher = (*PostBus)(nil)

func New(buf int) *PostBus {
	if buf <= 0 {
		buf = 64
	}
	return &PostBus{
		subs: make(map[chan service.Event]struct{}),
		buf:  buf,
	}
}

func (b *PostBus) Subscribe(ctx context.Context) <-chan service.Event {
	ch := make(chan service.Event, b.buf)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (b *PostBus) Publish(_ context.Context, event service.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}
