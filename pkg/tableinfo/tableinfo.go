package tableinfo

const (
	PostsTableName = "posts"

	PostIDColumn      = "id"
	PostContentColumn = "content"
	PostLikesColumn   = "likes"
	PostCreatedColumn = "created"
	PostRemovedColumn = "removed"
)

// PostColumns is the projection every post read returns, in scan order.
var PostColumns = []string{
	PostIDColumn,
	PostContentColumn,
	PostLikesColumn,
	PostCreatedColumn,
}
