package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	MessageCode string `json:"message_code"`
	Message     string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorBody{
		MessageCode: code,
		Message:     message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// businessStatus maps domain failure codes onto HTTP statuses. Unknown
// codes fall back to 400: every business failure is user-correctable.
var businessStatus = map[string]int{
	"invalid_time_range":         http.StatusBadRequest,
	"time_in_past":               http.StatusBadRequest,
	"invalid_state":              http.StatusBadRequest,
	"salon_mismatch":             http.StatusBadRequest,
	"bed_unavailable":            http.StatusConflict,
	"already_canceled_or_absent": http.StatusBadRequest,
	"therapy_not_found":          http.StatusNotFound,
	"bed_not_found":              http.StatusNotFound,
	"salon_not_found":            http.StatusNotFound,
	"reservation_not_found":      http.StatusNotFound,
}

var businessMessage = map[string]string{
	"invalid_time_range":         "time to must be greater than time from",
	"time_in_past":               "time from must be in the future",
	"invalid_state":              "reservation is not in a cancelable state",
	"salon_mismatch":             "therapy and salon bed are not in same salon",
	"bed_unavailable":            "bed not found or booked at this time",
	"already_canceled_or_absent": "this reservation already canceled or not found",
	"therapy_not_found":          "therapy not found",
	"bed_not_found":              "salon bed not found",
	"salon_not_found":            "salon not found",
	"reservation_not_found":      "reservation not found",
}

// WriteBusiness renders a BusinessError; anything else becomes a
// generic 500 so store errors never leak driver details.
func WriteBusiness(c *gin.Context, err error) {
	code := BusinessCode(err)
	if code == "" {
		Internal(c, "internal_error", "internal error")
		return
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusBadRequest
	}
	message, ok := businessMessage[code]
	if !ok {
		message = code
	}
	Write(c, status, code, message)
}
