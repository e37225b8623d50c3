package http

import (
	"net/http"

	"github.com/fwojciec/campusguide"
	"github.com/gin-gonic/gin"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	campusguide.ECONFLICT:       http.StatusConflict,
	campusguide.EINVALID:        http.StatusBadRequest,
	campusguide.ENOTFOUND:       http.StatusNotFound,
	campusguide.ENOTIMPLEMENTED: http.StatusNotImplemented,
	campusguide.ERATELIMIT:      http.StatusTooManyRequests,
	campusguide.EINTERNAL:       http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error writes err as a JSON error response. Internal errors are logged and
// their details hidden from the client.
func (s *Server) Error(c *gin.Context, err error) {
	code, message := campusguide.ErrorCode(err), campusguide.ErrorMessage(err)
	if code == campusguide.EINTERNAL {
		s.Logger.Error("http error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
			"err", err,
		)
	}
	c.AbortWithStatusJSON(ErrorStatusCode(code), errorResponse{Error: message})
}
