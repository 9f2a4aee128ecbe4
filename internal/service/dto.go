package service

// ID is required, and required on an integer means non-zero: id=0 is
// rejected while negative ids pass through to a not-found lookup.
type PostIDRequest struct {
	ID int64 `validate:"required"`
}

type CreatePostRequest struct {
	Content string `validate:"required"`
}

// Content may be empty on edit; the transport only checks that it was sent.
type EditPostRequest struct {
	ID      int64 `validate:"required"`
	Content string
}
