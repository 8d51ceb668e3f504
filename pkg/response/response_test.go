package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"daily-priority-agent/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		data := map[string]string{"foo": "bar"}
		response.OK(c, data)

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}

		if resp.ErrorCode != 0 {
			t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
		}
		// Data is mapped as float64/string/map depending on unmarshal
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("BadRequest", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.BadRequest(c, errors.New("test err"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)

		if resp.ErrorCode != http.StatusBadRequest {
			t.Errorf("expected ErrorCode 400, got %d", resp.ErrorCode)
		}
		if resp.Message != "test err" || len(resp.Errors) != 0 {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("BadRequest with validation errors", func(t *testing.T) {
		v := validator.New()
		response.UseJSONFieldNames(v)
		type item struct {
			Title string `json:"title" validate:"required"`
		}
		type body struct {
			Items []item `json:"items" validate:"dive"`
		}
		verr := v.Struct(body{Items: []item{{Title: "ok"}, {}}})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.BadRequest(c, verr)

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != response.MessageInvalidBody {
			t.Errorf("expected %q, got %q", response.MessageInvalidBody, resp.Message)
		}
		if len(resp.Errors) != 1 || resp.Errors[0] != (response.FieldError{Field: "items[1].title", Rule: "required"}) {
			t.Errorf("unexpected field errors: %+v", resp.Errors)
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("expected generic message, got %s", resp.Message)
		}
	})

	t.Run("Fail 422", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Fail(c, http.StatusUnprocessableEntity, errors.New("no tasks"))

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != "no tasks" {
			t.Errorf("expected message 'no tasks', got %s", resp.Message)
		}
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c)

		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
		if !c.IsAborted() {
			t.Error("expected context to be aborted")
		}
	})
}
