package service

import (
	"context"
	"fmt"
	"time"

	"postsvc/internal/model"
	"postsvc/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type PostService struct {
	mode     MutationMode
	events   EventPublisher
	validate *validator.Validate
	now      func() time.Time
}

func NewPostService(mode MutationMode, events EventPublisher) *PostService {
	return &PostService{
		mode:     mode,
		events:   events,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *PostService) List(ctx context.Context, sess Session) ([]model.Post, error) {
	posts, err := sess.SelectPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, sess Session, req PostIDRequest) (model.Post, error) {
	if err := s.validateRequest(req); err != nil {
		return model.Post{}, err
	}
	return sess.SelectPost(ctx, req.ID, false)
}

func (s *PostService) Create(ctx context.Context, sess Session, req CreatePostRequest) (model.Post, error) {
	if err := s.validateRequest(req); err != nil {
		return model.Post{}, err
	}

	var out model.Post
	err := s.mutate(ctx, sess, func(ctx context.Context) error {
		id, err := sess.InsertPost(ctx, req.Content)
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}
		out, err = sess.SelectPost(ctx, id, false)
		return err
	})
	if err != nil {
		return model.Post{}, err
	}

	s.publish(ctx, EventPostCreated, out)
	return out, nil
}

func (s *PostService) Edit(ctx context.Context, sess Session, req EditPostRequest) (model.Post, error) {
	if err := s.validateRequest(req); err != nil {
		return model.Post{}, err
	}

	if err := sess.UpdateContent(ctx, req.ID, req.Content); err != nil {
		return model.Post{}, fmt.Errorf("update content: %w", err)
	}
	out, err := sess.SelectPost(ctx, req.ID, false)
	if err != nil {
		return model.Post{}, err
	}

	s.publish(ctx, EventPostEdited, out)
	return out, nil
}

// Delete marks a live post removed and returns the row as it was before.
func (s *PostService) Delete(ctx context.Context, sess Session, req PostIDRequest) (model.Post, error) {
	if err := s.validateRequest(req); err != nil {
		return model.Post{}, err
	}

	out, err := s.toggleRemoved(ctx, sess, req.ID, true)
	if err != nil {
		return model.Post{}, err
	}

	s.publish(ctx, EventPostRemoved, out)
	return out, nil
}

// Restore brings a removed post back and returns the row as it was before.
func (s *PostService) Restore(ctx context.Context, sess Session, req PostIDRequest) (model.Post, error) {
	if err := s.validateRequest(req); err != nil {
		return model.Post{}, err
	}

	out, err := s.toggleRemoved(ctx, sess, req.ID, false)
	if err != nil {
		return model.Post{}, err
	}

	s.publish(ctx, EventPostRestored, out)
	return out, nil
}

func (s *PostService) Like(ctx context.Context, sess Session, req PostIDRequest) (model.Post, error) {
	if err := s.validateRequest(req); err != nil {
		return model.Post{}, err
	}

	out, err := s.adjustLikes(ctx, sess, req.ID, 1)
	if err != nil {
		return model.Post{}, err
	}

	s.publish(ctx, EventPostLiked, out)
	return out, nil
}

// Dislike has no floor: a post at zero likes goes negative.
func (s *PostService) Dislike(ctx context.Context, sess Session, req PostIDRequest) (model.Post, error) {
	if err := s.validateRequest(req); err != nil {
		return model.Post{}, err
	}

	out, err := s.adjustLikes(ctx, sess, req.ID, -1)
	if err != nil {
		return model.Post{}, err
	}

	s.publish(ctx, EventPostDisliked, out)
	return out, nil
}

func (s *PostService) toggleRemoved(ctx context.Context, sess Session, postID int64, removed bool) (model.Post, error) {
	lookup := sess.SelectPost
	if s.mode == ModeAtomic {
		lookup = sess.LockPost
	}

	var snapshot model.Post
	err := s.mutate(ctx, sess, func(ctx context.Context) error {
		var err error
		snapshot, err = lookup(ctx, postID, !removed)
		if err != nil {
			return err
		}
		if err := sess.SetRemoved(ctx, postID, removed); err != nil {
			return fmt.Errorf("set removed=%t: %w", removed, err)
		}
		return nil
	})
	if err != nil {
		return model.Post{}, err
	}
	return snapshot, nil
}

func (s *PostService) adjustLikes(ctx context.Context, sess Session, postID, delta int64) (model.Post, error) {
	if s.mode == ModeAtomic {
		return sess.AddLikes(ctx, postID, delta)
	}

	current, err := sess.SelectPost(ctx, postID, false)
	if err != nil {
		return model.Post{}, err
	}
	if err := sess.UpdateLikes(ctx, postID, current.Likes+delta); err != nil {
		return model.Post{}, fmt.Errorf("update likes: %w", err)
	}
	return sess.SelectPost(ctx, postID, false)
}

func (s *PostService) mutate(ctx context.Context, sess Session, fn func(ctx context.Context) error) error {
	if s.mode == ModeAtomic {
		return sess.Atomically(ctx, fn)
	}
	return fn(ctx)
}

func (s *PostService) validateRequest(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func (s *PostService) publish(ctx context.Context, typ EventType, p model.Post) {
	if s.events == nil {
		return
	}
	event := Event{Type: typ, Post: p, At: s.now().UTC()}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn("publish post event", "type", typ, "post_id", p.ID, "error", err)
	}
}
