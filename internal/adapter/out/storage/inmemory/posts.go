package inmemory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"postsvc/internal/adapter/out/storage"
	"postsvc/internal/model"
	"postsvc/internal/service"
)

// Store keeps posts in memory. Row i holds the post with id i; row 0 is
// never used so ids start at 1 and are never reused.
type Store struct {
	mu    sync.RWMutex
	txMu  sync.Mutex
	posts []model.Post
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		posts: []model.Post{{}},
		now:   time.Now,
	}
}

func (s *Store) Acquire(_ context.Context) (service.Session, error) {
	return &Session{store: s}, nil
}

type Session struct {
	store  *Store
	closed atomic.Bool
}

var _ service.Session = (*Session)(nil)

func (ss *Session) SelectPosts(_ context.Context) ([]model.Post, error) {
	s := ss.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Post, 0, len(s.posts)-1)
	for id := len(s.posts) - 1; id >= 1; id-- {
		if p := s.posts[id]; !p.Removed {
			out = append(out, p)
		}
	}
	return out, nil
}

func (ss *Session) SelectPost(_ context.Context, postID int64, removed bool) (model.Post, error) {
	s := ss.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.row(postID)
	if !ok || p.Removed != removed {
		return model.Post{}, service.ErrNotFound
	}
	return *p, nil
}

// LockPost has no row locks to take; Atomically already serialises the
// closures that call it.
func (ss *Session) LockPost(ctx context.Context, postID int64, removed bool) (model.Post, error) {
	return ss.SelectPost(ctx, postID, removed)
}

func (ss *Session) InsertPost(_ context.Context, content string) (int64, error) {
	s := ss.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Post{
		ID:      int64(len(s.posts)),
		Content: content,
		Created: s.now().UTC(),
	}
	s.posts = append(s.posts, p)
	return p.ID, nil
}

func (ss *Session) UpdateContent(_ context.Context, postID int64, content string) error {
	s := ss.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.row(postID); ok && !p.Removed {
		p.Content = content
	}
	return nil
}

func (ss *Session) UpdateLikes(_ context.Context, postID int64, likes int64) error {
	s := ss.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.row(postID); ok && !p.Removed {
		p.Likes = likes
	}
	return nil
}

func (ss *Session) AddLikes(_ context.Context, postID int64, delta int64) (model.Post, error) {
	s := ss.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.row(postID)
	if !ok || p.Removed {
		return model.Post{}, service.ErrNotFound
	}
	p.Likes += delta
	return *p, nil
}

func (ss *Session) SetRemoved(_ context.Context, postID int64, removed bool) error {
	s := ss.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.row(postID); ok && p.Removed != removed {
		p.Removed = removed
	}
	return nil
}

func (ss *Session) Atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	ss.store.txMu.Lock()
	defer ss.store.txMu.Unlock()
	return fn(ctx)
}

func (ss *Session) Close(_ context.Context) error {
	if !ss.closed.CompareAndSwap(false, true) {
		return storage.ErrSessionClosed
	}
	return nil
}

// row must be called with mu held.
func (s *Store) row(postID int64) (*model.Post, bool) {
	if postID <= 0 || postID >= int64(len(s.posts)) {
		return nil, false
	}
	return &s.posts[postID], true
}
