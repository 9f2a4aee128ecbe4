package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"postsvc/internal/adapter/out/storage"
	"postsvc/internal/model"
	"postsvc/internal/service"
	"postsvc/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5"
)

var (
	ErrBuildingQuery = errors.New("error building sql-query")
)

// DB is a single pgx connection, or anything shaped like one.
//
//go:generate mockgen -destination=./mocks/db_mock.go -package=mocks postsvc/internal/adapter/out/storage/postgres DB
type DB interface {
	trmpgx.Tr
	trmpgx.Transactional
}

// Session issues every statement on one connection. Statements run in the
// transaction carried by ctx when there is one, otherwise they autocommit.
type Session struct {
	db      DB
	getter  *trmpgx.CtxGetter
	trm     *manager.Manager
	release func()
	closed  atomic.Bool
}

var _ service.Session = (*Session)(nil)

func NewSession(db DB, getter *trmpgx.CtxGetter, release func()) *Session {
	return &Session{
		db:      db,
		getter:  getter,
		trm:     manager.Must(trmpgx.NewDefaultFactory(db)),
		release: release,
	}
}

func (s *Session) SelectPosts(ctx context.Context) ([]model.Post, error) {
	query, args, err := sq.
		Select(tableinfo.PostColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostRemovedColumn: false}).
		OrderBy(tableinfo.PostIDColumn + " DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec error selecting posts: %w", err)
	}
	defer rows.Close()

	out := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Content, &p.Likes, &p.Created); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

func (s *Session) SelectPost(ctx context.Context, postID int64, removed bool) (model.Post, error) {
	return s.selectPost(ctx, postID, removed, false)
}

// LockPost is SelectPost with FOR UPDATE; it only holds the lock when ctx
// carries a transaction.
func (s *Session) LockPost(ctx context.Context, postID int64, removed bool) (model.Post, error) {
	return s.selectPost(ctx, postID, removed, true)
}

func (s *Session) selectPost(ctx context.Context, postID int64, removed, lock bool) (model.Post, error) {
	qb := sq.
		Select(tableinfo.PostColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		Where(sq.Eq{tableinfo.PostRemovedColumn: removed}).
		PlaceholderFormat(sq.Dollar)
	if lock {
		qb = qb.Suffix("FOR UPDATE")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	out, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, service.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("exec select post by id: %w", err)
	}
	return out, nil
}

func (s *Session) InsertPost(ctx context.Context, content string) (int64, error) {
	query, args, err := sq.
		Insert(tableinfo.PostsTableName).
		Columns(tableinfo.PostContentColumn).
		Values(content).
		Suffix("RETURNING " + tableinfo.PostIDColumn).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	var id int64
	if err := tr.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("exec error creating post: %w", err)
	}
	return id, nil
}

func (s *Session) UpdateContent(ctx context.Context, postID int64, content string) error {
	return s.updateLive(ctx, postID, tableinfo.PostContentColumn, content)
}

func (s *Session) UpdateLikes(ctx context.Context, postID int64, likes int64) error {
	return s.updateLive(ctx, postID, tableinfo.PostLikesColumn, likes)
}

func (s *Session) updateLive(ctx context.Context, postID int64, column string, value any) error {
	query, args, err := sq.
		Update(tableinfo.PostsTableName).
		Set(column, value).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		Where(sq.Eq{tableinfo.PostRemovedColumn: false}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	if _, err := tr.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec update %s: %w", column, err)
	}
	return nil
}

func (s *Session) AddLikes(ctx context.Context, postID int64, delta int64) (model.Post, error) {
	query, args, err := sq.
		Update(tableinfo.PostsTableName).
		Set(tableinfo.PostLikesColumn, sq.Expr(tableinfo.PostLikesColumn+" + ?", delta)).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		Where(sq.Eq{tableinfo.PostRemovedColumn: false}).
		Suffix("RETURNING " + strings.Join(tableinfo.PostColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	out, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, service.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("exec add likes: %w", err)
	}
	return out, nil
}

// SetRemoved flips the flag only on rows currently in the opposite state.
func (s *Session) SetRemoved(ctx context.Context, postID int64, removed bool) error {
	query, args, err := sq.
		Update(tableinfo.PostsTableName).
		Set(tableinfo.PostRemovedColumn, removed).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		Where(sq.Eq{tableinfo.PostRemovedColumn: !removed}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	if _, err := tr.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec update removed: %w", err)
	}
	return nil
}

func (s *Session) Atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.trm.Do(ctx, fn)
}

func (s *Session) Close(_ context.Context) error {
	if !s.closed.CompareAndSwap(false, true) {
		return storage.ErrSessionClosed
	}
	if s.release != nil {
		s.release()
	}
	return nil
}

func scanPost(row pgx.Row) (model.Post, error) {
	var p model.Post
	if err := row.Scan(&p.ID, &p.Content, &p.Likes, &p.Created); err != nil {
		return model.Post{}, err
	}
	return p, nil
}
