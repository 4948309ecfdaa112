package httperror

type Error struct {
	Message string `json:"error" example:"there is no envelope matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
