// Package httperr defines the JSON error envelope returned by every API
// endpoint and the single helper handlers use to emit it.
package httperr

import "github.com/gin-gonic/gin"

type errorBody struct {
	Message string `json:"message"`
}

// Response is the error payload written to the client. Status is kept for
// the logging middleware but never serialized.
type Response struct {
	Status int       `json:"-"`
	Error  errorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError writes the error envelope and stops the handler chain.
// The original err is attached to the gin error list so the logging
// middleware can record it without exposing internals to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := Response{
		Status: status,
		Error:  errorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
