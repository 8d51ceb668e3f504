package response

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// NewOKResp wraps data in the success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Fail writes err with the given status. 5xx messages are replaced by
// DefaultErrorMessage so internals never reach the client.
func Fail(c *gin.Context, status int, err error) {
	msg := DefaultErrorMessage
	if status < http.StatusInternalServerError && err != nil {
		msg = err.Error()
	}
	c.JSON(status, Resp{ErrorCode: status, Message: msg})
}

// BadRequest sends 400. Binding failures are listed per field in Errors.
func BadRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Fail(c, http.StatusBadRequest, err)
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldPath(fe.Namespace()), Rule: fe.Tag()})
	}
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   MessageInvalidBody,
		Errors:    fields,
	})
}

// InternalError sends 500 with the generic message.
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, nil)
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}

// fieldPath drops the root struct name: "createPlanReq.tasks[0].title" becomes "tasks[0].title".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// UseJSONFieldNames makes validation errors report json tag names instead of Go field names.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}
