package model

import "time"

type Post struct {
	ID      int64     `json:"id"`
	Content string    `json:"content"`
	Likes   int64     `json:"likes"`
	Created time.Time `json:"created"`
	Removed bool      `json:"-"`
}
