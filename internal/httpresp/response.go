package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every success response carries the same envelope the clients already
// parse: data plus a message code and its readable text.
type Body struct {
	Data        any    `json:"data,omitempty"`
	MessageCode string `json:"message_code"`
	Message     string `json:"message"`
}

const (
	CodeSuccess = "G0001"
	CodeCreated = "G0002"
)

var messages = map[string]string{
	CodeSuccess: "Success.",
	CodeCreated: "Created.",
}

func OK(c *gin.Context, data any) {
	write(c, http.StatusOK, CodeSuccess, data)
}

func Created(c *gin.Context, data any) {
	write(c, http.StatusCreated, CodeCreated, data)
}

func write(c *gin.Context, status int, code string, data any) {
	c.JSON(status, Body{
		Data:        data,
		MessageCode: code,
		Message:     messages[code],
	})
}

type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// TotalPages is ceil(total/limit) without float math.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	if total%limit != 0 {
		return total/limit + 1
	}
	return total / limit
}

func List[T any](c *gin.Context, items []T, total, limit int64) {
	if items == nil {
		items = []T{}
	}
	OK(c, Page[T]{
		Items: items,
		Total: total,
		Pages: TotalPages(total, limit),
	})
}
