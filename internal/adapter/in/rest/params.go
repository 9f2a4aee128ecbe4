package rest

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"postsvc/internal/service"
)

const (
	paramID      = "id"
	paramContent = "content"
)

// queryID accepts any number as an id. A missing or zero id is left as zero
// for the service to reject. Numbers that cannot name a row, such as
// fractions or values outside int64, are not found.
func queryID(q url.Values) (int64, error) {
	if !q.Has(paramID) {
		return 0, nil
	}

	raw := strings.TrimSpace(q.Get(paramID))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: id: %v", service.ErrInvalidRequest, err)
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: id is not a number", service.ErrInvalidRequest)
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: no post with id %q", service.ErrNotFound, raw)
	}
	return int64(f), nil
}

func toPostIDRequest(q url.Values) (service.PostIDRequest, error) {
	id, err := queryID(q)
	if err != nil {
		return service.PostIDRequest{}, err
	}
	return service.PostIDRequest{ID: id}, nil
}

func toCreatePostRequest(q url.Values) service.CreatePostRequest {
	return service.CreatePostRequest{Content: q.Get(paramContent)}
}

// toEditPostRequest reports a missing content before an id that cannot exist.
func toEditPostRequest(q url.Values) (service.EditPostRequest, error) {
	id, err := queryID(q)
	if errors.Is(err, service.ErrInvalidRequest) {
		return service.EditPostRequest{}, err
	}
	if !q.Has(paramContent) {
		return service.EditPostRequest{}, fmt.Errorf("%w: missing content", service.ErrInvalidRequest)
	}
	if err != nil {
		return service.EditPostRequest{}, err
	}
	return service.EditPostRequest{ID: id, Content: q.Get(paramContent)}, nil
}
