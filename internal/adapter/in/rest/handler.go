package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"time"

	"postsvc/internal/model"
	"postsvc/internal/service"
	"postsvc/pkg/logger"

	"github.com/google/uuid"
)

type PostService interface {
	List(ctx context.Context, sess service.Session) ([]model.Post, error)
	GetByID(ctx context.Context, sess service.Session, req service.PostIDRequest) (model.Post, error)
	Create(ctx context.Context, sess service.Session, req service.CreatePostRequest) (model.Post, error)
	Edit(ctx context.Context, sess service.Session, req service.EditPostRequest) (model.Post, error)
	Delete(ctx context.Context, sess service.Session, req service.PostIDRequest) (model.Post, error)
	Restore(ctx context.Context, sess service.Session, req service.PostIDRequest) (model.Post, error)
	Like(ctx context.Context, sess service.Session, req service.PostIDRequest) (model.Post, error)
	Dislike(ctx context.Context, sess service.Session, req service.PostIDRequest) (model.Post, error)
}

type Handler struct {
	posts    PostService
	sessions service.SessionProvider
}

func NewHandler(posts PostService, sessions service.SessionProvider) *Handler {
	return &Handler{
		posts:    posts,
		sessions: sessions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	op, ok := Lookup(r.URL.Path)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	start := time.Now()
	log := logger.FromContext(r.Context()).With(
		"request_id", uuid.NewString(),
		"operation", op.String(),
	)
	ctx := logger.WithLogger(r.Context(), log)

	rec := &recorder{ResponseWriter: w}
	h.serve(ctx, rec, op, r.URL.Query())

	log.Info("request served", "status", rec.status, "duration", time.Since(start))
}

// serve holds one session for the whole operation and releases it on every
// exit path. Release errors are only logged: the response is already out.
func (h *Handler) serve(ctx context.Context, w http.ResponseWriter, op Operation, q url.Values) {
	log := logger.FromContext(ctx)

	sess, err := h.sessions.Acquire(ctx)
	if err != nil {
		log.Error("acquire session", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := sess.Close(context.WithoutCancel(ctx)); err != nil {
			log.Warn("release session", "error", err)
		}
	}()
	defer func() {
		if p := recover(); p != nil {
			log.Error("operation panicked", "panic", p, "stack", string(debug.Stack()))
			w.WriteHeader(http.StatusInternalServerError)
		}
	}()

	payload, err := h.run(ctx, op, sess, q)
	respond(ctx, w, payload, err)
}

func (h *Handler) run(ctx context.Context, op Operation, sess service.Session, q url.Values) (any, error) {
	switch op {
	case OpList:
		return h.posts.List(ctx, sess)

	case OpGetByID:
		req, err := toPostIDRequest(q)
		if err != nil {
			return nil, err
		}
		return h.posts.GetByID(ctx, sess, req)

	case OpCreate:
		return h.posts.Create(ctx, sess, toCreatePostRequest(q))

	case OpEdit:
		req, err := toEditPostRequest(q)
		if err != nil {
			return nil, err
		}
		return h.posts.Edit(ctx, sess, req)

	case OpDelete, OpRestore, OpLike, OpDislike:
		req, err := toPostIDRequest(q)
		if err != nil {
			return nil, err
		}
		return h.byID(op)(ctx, sess, req)

	default:
		return nil, fmt.Errorf("%w: no handler for operation %d", service.ErrInternalError, op)
	}
}

func (h *Handler) byID(op Operation) func(context.Context, service.Session, service.PostIDRequest) (model.Post, error) {
	switch op {
	case OpDelete:
		return h.posts.Delete
	case OpRestore:
		return h.posts.Restore
	case OpLike:
		return h.posts.Like
	default:
		return h.posts.Dislike
	}
}
