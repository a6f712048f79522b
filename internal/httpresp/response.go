package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps collection payloads so clients get the total without
// counting, and an empty result is `[]`, never `null`.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// Message is the body of mutation endpoints that have nothing to return.
func Message(c *gin.Context, text string) {
	c.JSON(http.StatusOK, gin.H{"message": text})
}
