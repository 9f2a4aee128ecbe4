package service

import (
	"context"

	"postsvc/internal/model"
)

// Session is one request's handle on the posts table. Every method except
// Atomically issues a single statement that commits on its own.
//
//go:generate mockgen -source=session.go -destination=./session_mock.go -package=service
type Session interface {
	SelectPosts(ctx context.Context) ([]model.Post, error)
	SelectPost(ctx context.Context, postID int64, removed bool) (model.Post, error)
	LockPost(ctx context.Context, postID int64, removed bool) (model.Post, error)
	InsertPost(ctx context.Context, content string) (int64, error)
	UpdateContent(ctx context.Context, postID int64, content string) error
	UpdateLikes(ctx context.Context, postID int64, likes int64) error
	AddLikes(ctx context.Context, postID int64, delta int64) (model.Post, error)
	SetRemoved(ctx context.Context, postID int64, removed bool) error

	// Atomically runs fn so that every statement fn issues through ctx
	// belongs to one transaction.
	Atomically(ctx context.Context, fn func(ctx context.Context) error) error

	Close(ctx context.Context) error
}

type SessionProvider interface {
	Acquire(ctx context.Context) (Session, error)
}
