package service

import (
	"context"
	"time"

	"postsvc/internal/model"
)

type EventType string

const (
	EventPostCreated  EventType = "posts.created"
	EventPostEdited   EventType = "posts.edited"
	EventPostRemoved  EventType = "posts.removed"
	EventPostRestored EventType = "posts.restored"
	EventPostLiked    EventType = "posts.liked"
	EventPostDisliked EventType = "posts.disliked"
)

type Event struct {
	Type EventType  `json:"type"`
	Post model.Post `json:"post"`
	At   time.Time  `json:"at"`
}

//go:generate mockgen -source=events.go -destination=./events_mock.go -package=service
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
