package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"postsvc/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDB = errors.New("db fail")

func runInline(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newTestService(t *testing.T, mode MutationMode) (*PostService, *MockSession, *MockEventPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sess := NewMockSession(ctrl)
	events := NewMockEventPublisher(ctrl)

	svc := NewPostService(mode, events)
	svc.now = func() time.Time { return time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC) }
	return svc, sess, events
}

func TestPostService_List(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		setup   func(m *MockSession)
		want    []model.Post
		wantErr bool
	}{
		{
			name: "success",
			setup: func(m *MockSession) {
				m.EXPECT().SelectPosts(gomock.Any()).Return([]model.Post{
					{ID: 2, Content: "b", Created: now},
					{ID: 1, Content: "a", Created: now},
				}, nil)
			},
			want: []model.Post{
				{ID: 2, Content: "b", Created: now},
				{ID: 1, Content: "a", Created: now},
			},
		},
		{
			name: "empty",
			setup: func(m *MockSession) {
				m.EXPECT().SelectPosts(gomock.Any()).Return([]model.Post{}, nil)
			},
			want: []model.Post{},
		},
		{
			name: "storage error",
			setup: func(m *MockSession) {
				m.EXPECT().SelectPosts(gomock.Any()).Return(nil, errDB)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess, _ := newTestService(t, ModeSequential)
			tt.setup(sess)

			got, err := svc.List(context.Background(), sess)
			if tt.wantErr {
				require.ErrorIs(t, err, errDB)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPostService_GetByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     PostIDRequest
		setup   func(m *MockSession)
		wantErr error
	}{
		{
			name:    "zero id is invalid",
			req:     PostIDRequest{ID: 0},
			setup:   func(_ *MockSession) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "negative id reaches storage",
			req:  PostIDRequest{ID: -3},
			setup: func(m *MockSession) {
				m.EXPECT().SelectPost(gomock.Any(), int64(-3), false).Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "not found",
			req:  PostIDRequest{ID: 404},
			setup: func(m *MockSession) {
				m.EXPECT().SelectPost(gomock.Any(), int64(404), false).Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "success",
			req:  PostIDRequest{ID: 5},
			setup: func(m *MockSession) {
				m.EXPECT().SelectPost(gomock.Any(), int64(5), false).Return(model.Post{ID: 5, Content: "x"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess, _ := newTestService(t, ModeSequential)
			tt.setup(sess)

			got, err := svc.GetByID(context.Background(), sess, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.req.ID, got.ID)
		})
	}
}

func TestPostService_Create(t *testing.T) {
	t.Parallel()

	created := model.Post{ID: 10, Content: "hello", Likes: 0, Created: time.Now()}

	tests := []struct {
		name    string
		mode    MutationMode
		req     CreatePostRequest
		setup   func(s *MockSession, e *MockEventPublisher)
		wantErr error
	}{
		{
			name:    "empty content",
			mode:    ModeSequential,
			req:     CreatePostRequest{},
			setup:   func(_ *MockSession, _ *MockEventPublisher) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "insert error",
			mode: ModeSequential,
			req:  CreatePostRequest{Content: "hello"},
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().InsertPost(gomock.Any(), "hello").Return(int64(0), errDB)
			},
			wantErr: errDB,
		},
		{
			name: "readback miss",
			mode: ModeSequential,
			req:  CreatePostRequest{Content: "hello"},
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().InsertPost(gomock.Any(), "hello").Return(int64(10), nil)
				s.EXPECT().SelectPost(gomock.Any(), int64(10), false).Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "sequential success",
			mode: ModeSequential,
			req:  CreatePostRequest{Content: "hello"},
			setup: func(s *MockSession, e *MockEventPublisher) {
				gomock.InOrder(
					s.EXPECT().InsertPost(gomock.Any(), "hello").Return(int64(10), nil),
					s.EXPECT().SelectPost(gomock.Any(), int64(10), false).Return(created, nil),
				)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev Event) error {
					require.Equal(t, EventPostCreated, ev.Type)
					require.Equal(t, created, ev.Post)
					return nil
				})
			},
		},
		{
			name: "atomic success runs in a transaction",
			mode: ModeAtomic,
			req:  CreatePostRequest{Content: "hello"},
			setup: func(s *MockSession, e *MockEventPublisher) {
				s.EXPECT().Atomically(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
				s.EXPECT().InsertPost(gomock.Any(), "hello").Return(int64(10), nil)
				s.EXPECT().SelectPost(gomock.Any(), int64(10), false).Return(created, nil)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "publish error does not fail the request",
			mode: ModeSequential,
			req:  CreatePostRequest{Content: "hello"},
			setup: func(s *MockSession, e *MockEventPublisher) {
				s.EXPECT().InsertPost(gomock.Any(), "hello").Return(int64(10), nil)
				s.EXPECT().SelectPost(gomock.Any(), int64(10), false).Return(created, nil)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess, events := newTestService(t, tt.mode)
			tt.setup(sess, events)

			got, err := svc.Create(context.Background(), sess, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, created, got)
		})
	}
}

func TestPostService_Edit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     EditPostRequest
		setup   func(s *MockSession, e *MockEventPublisher)
		wantErr error
	}{
		{
			name:    "missing id",
			req:     EditPostRequest{Content: "x"},
			setup:   func(_ *MockSession, _ *MockEventPublisher) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "empty content",
			req:  EditPostRequest{ID: 1},
			setup: func(s *MockSession, e *MockEventPublisher) {
				s.EXPECT().UpdateContent(gomock.Any(), int64(1), "").Return(nil)
				s.EXPECT().SelectPost(gomock.Any(), int64(1), false).Return(model.Post{ID: 1}, nil)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "update error",
			req:  EditPostRequest{ID: 1, Content: "x"},
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().UpdateContent(gomock.Any(), int64(1), "x").Return(errDB)
			},
			wantErr: errDB,
		},
		{
			name: "removed or unknown post",
			req:  EditPostRequest{ID: 1, Content: "x"},
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().UpdateContent(gomock.Any(), int64(1), "x").Return(nil)
				s.EXPECT().SelectPost(gomock.Any(), int64(1), false).Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "success",
			req:  EditPostRequest{ID: 1, Content: "x"},
			setup: func(s *MockSession, e *MockEventPublisher) {
				s.EXPECT().UpdateContent(gomock.Any(), int64(1), "x").Return(nil)
				s.EXPECT().SelectPost(gomock.Any(), int64(1), false).Return(model.Post{ID: 1, Content: "x"}, nil)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess, events := newTestService(t, ModeSequential)
			tt.setup(sess, events)

			got, err := svc.Edit(context.Background(), sess, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.req.Content, got.Content)
		})
	}
}

func TestPostService_DeleteRestore(t *testing.T) {
	t.Parallel()

	live := model.Post{ID: 3, Content: "c", Likes: 2}
	removed := model.Post{ID: 3, Content: "c", Likes: 2, Removed: true}

	tests := []struct {
		name    string
		mode    MutationMode
		call    func(svc *PostService, sess Session) (model.Post, error)
		setup   func(s *MockSession, e *MockEventPublisher)
		want    model.Post
		wantErr error
	}{
		{
			name: "delete invalid id",
			mode: ModeSequential,
			call: func(svc *PostService, sess Session) (model.Post, error) {
				return svc.Delete(context.Background(), sess, PostIDRequest{})
			},
			setup:   func(_ *MockSession, _ *MockEventPublisher) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "delete returns snapshot",
			mode: ModeSequential,
			call: func(svc *PostService, sess Session) (model.Post, error) {
				return svc.Delete(context.Background(), sess, PostIDRequest{ID: 3})
			},
			setup: func(s *MockSession, e *MockEventPublisher) {
				gomock.InOrder(
					s.EXPECT().SelectPost(gomock.Any(), int64(3), false).Return(live, nil),
					s.EXPECT().SetRemoved(gomock.Any(), int64(3), true).Return(nil),
				)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev Event) error {
					require.Equal(t, EventPostRemoved, ev.Type)
					return nil
				})
			},
			want: live,
		},
		{
			name: "delete of missing post issues no update",
			mode: ModeSequential,
			call: func(svc *PostService, sess Session) (model.Post, error) {
				return svc.Delete(context.Background(), sess, PostIDRequest{ID: 3})
			},
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().SelectPost(gomock.Any(), int64(3), false).Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "delete update error",
			mode: ModeSequential,
			call: func(svc *PostService, sess Session) (model.Post, error) {
				return svc.Delete(context.Background(), sess, PostIDRequest{ID: 3})
			},
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().SelectPost(gomock.Any(), int64(3), false).Return(live, nil)
				s.EXPECT().SetRemoved(gomock.Any(), int64(3), true).Return(errDB)
			},
			wantErr: errDB,
		},
		{
			name: "atomic delete locks the row",
			mode: ModeAtomic,
			call: func(svc *PostService, sess Session) (model.Post, error) {
				return svc.Delete(context.Background(), sess, PostIDRequest{ID: 3})
			},
			setup: func(s *MockSession, e *MockEventPublisher) {
				s.EXPECT().Atomically(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
				s.EXPECT().LockPost(gomock.Any(), int64(3), false).Return(live, nil)
				s.EXPECT().SetRemoved(gomock.Any(), int64(3), true).Return(nil)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: live,
		},
		{
			name: "restore returns removed snapshot",
			mode: ModeSequential,
			call: func(svc *PostService, sess Session) (model.Post, error) {
				return svc.Restore(context.Background(), sess, PostIDRequest{ID: 3})
			},
			setup: func(s *MockSession, e *MockEventPublisher) {
				gomock.InOrder(
					s.EXPECT().SelectPost(gomock.Any(), int64(3), true).Return(removed, nil),
					s.EXPECT().SetRemoved(gomock.Any(), int64(3), false).Return(nil),
				)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev Event) error {
					require.Equal(t, EventPostRestored, ev.Type)
					return nil
				})
			},
			want: removed,
		},
		{
			name: "restore of live post",
			mode: ModeSequential,
			call: func(svc *PostService, sess Session) (model.Post, error) {
				return svc.Restore(context.Background(), sess, PostIDRequest{ID: 3})
			},
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().SelectPost(gomock.Any(), int64(3), true).Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess, events := newTestService(t, tt.mode)
			tt.setup(sess, events)

			got, err := tt.call(svc, sess)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPostService_LikeDislike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mode      MutationMode
		dislike   bool
		setup     func(s *MockSession, e *MockEventPublisher)
		wantLikes int64
		wantErr   error
	}{
		{
			name: "sequential like reads, writes, reads back",
			mode: ModeSequential,
			setup: func(s *MockSession, e *MockEventPublisher) {
				gomock.InOrder(
					s.EXPECT().SelectPost(gomock.Any(), int64(7), false).Return(model.Post{ID: 7, Likes: 4}, nil),
					s.EXPECT().UpdateLikes(gomock.Any(), int64(7), int64(5)).Return(nil),
					s.EXPECT().SelectPost(gomock.Any(), int64(7), false).Return(model.Post{ID: 7, Likes: 5}, nil),
				)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev Event) error {
					require.Equal(t, EventPostLiked, ev.Type)
					return nil
				})
			},
			wantLikes: 5,
		},
		{
			name:    "sequential dislike below zero",
			mode:    ModeSequential,
			dislike: true,
			setup: func(s *MockSession, e *MockEventPublisher) {
				s.EXPECT().SelectPost(gomock.Any(), int64(7), false).Return(model.Post{ID: 7, Likes: 0}, nil)
				s.EXPECT().UpdateLikes(gomock.Any(), int64(7), int64(-1)).Return(nil)
				s.EXPECT().SelectPost(gomock.Any(), int64(7), false).Return(model.Post{ID: 7, Likes: -1}, nil)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantLikes: -1,
		},
		{
			name: "not found",
			mode: ModeSequential,
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().SelectPost(gomock.Any(), int64(7), false).Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "update error",
			mode: ModeSequential,
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().SelectPost(gomock.Any(), int64(7), false).Return(model.Post{ID: 7, Likes: 1}, nil)
				s.EXPECT().UpdateLikes(gomock.Any(), int64(7), int64(2)).Return(errDB)
			},
			wantErr: errDB,
		},
		{
			name: "atomic like is a single statement",
			mode: ModeAtomic,
			setup: func(s *MockSession, e *MockEventPublisher) {
				s.EXPECT().AddLikes(gomock.Any(), int64(7), int64(1)).Return(model.Post{ID: 7, Likes: 9}, nil)
				e.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantLikes: 9,
		},
		{
			name:    "atomic dislike of removed post",
			mode:    ModeAtomic,
			dislike: true,
			setup: func(s *MockSession, _ *MockEventPublisher) {
				s.EXPECT().AddLikes(gomock.Any(), int64(7), int64(-1)).Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess, events := newTestService(t, tt.mode)
			tt.setup(sess, events)

			call := svc.Like
			if tt.dislike {
				call = svc.Dislike
			}

			got, err := call(context.Background(), sess, PostIDRequest{ID: 7})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantLikes, got.Likes)
		})
	}
}

func TestParseMutationMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseMutationMode("")
	require.NoError(t, err)
	require.Equal(t, ModeSequential, mode)

	mode, err = ParseMutationMode("atomic")
	require.NoError(t, err)
	require.Equal(t, ModeAtomic, mode)

	_, err = ParseMutationMode("optimistic")
	require.Error(t, err)
}
