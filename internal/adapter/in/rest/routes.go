package rest

// Operation identifies one of the fixed post actions.
type Operation int

const (
	OpList Operation = iota + 1
	OpGetByID
	OpCreate
	OpEdit
	OpDelete
	OpRestore
	OpLike
	OpDislike
)

var routes = map[string]Operation{
	"/posts.get":     OpList,
	"/posts.getById": OpGetByID,
	"/posts.post":    OpCreate,
	"/posts.edit":    OpEdit,
	"/posts.delete":  OpDelete,
	"/posts.restore": OpRestore,
	"/posts.like":    OpLike,
	"/posts.dislike": OpDislike,
}

// Lookup matches the exact request path; there are no patterns and the
// HTTP method is not considered.
func Lookup(path string) (Operation, bool) {
	op, ok := routes[path]
	return op, ok
}

func (op Operation) String() string {
	switch op {
	case OpList:
		return "list"
	case OpGetByID:
		return "getById"
	case OpCreate:
		return "create"
	case OpEdit:
		return "edit"
	case OpDelete:
		return "delete"
	case OpRestore:
		return "restore"
	case OpLike:
		return "like"
	case OpDislike:
		return "dislike"
	default:
		return "unknown"
	}
}
