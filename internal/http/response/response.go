package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgValidation = "validation errors"
	MsgInternal   = "internal server error"
)

// ErrorBody is the single-message shape used for 404 and 5xx responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorsBody is the list shape used for rejected input.
type ErrorsBody struct {
	Errors []string `json:"errors"`
}

// RespondError writes the body for status. entity names the missing resource on 404.
func RespondError(c *gin.Context, status int, entity string) {
	switch {
	case status == http.StatusNotFound:
		c.AbortWithStatusJSON(status, ErrorBody{Error: NotFoundMessage(entity)})
	case status >= 400 && status < 500:
		c.AbortWithStatusJSON(status, ErrorsBody{Errors: []string{MsgValidation}})
	default:
		c.AbortWithStatusJSON(status, ErrorBody{Error: MsgInternal})
	}
}

func NotFoundMessage(entity string) string {
	if entity == "" {
		return "Not found"
	}
	return entity + " not found"
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondAccepted(c *gin.Context, payload any) {
	c.JSON(http.StatusAccepted, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
