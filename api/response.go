package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Soneshaps/musicgpt-clone/utils"
)

// Envelope wraps every successful JSON body.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

type ErrorResponse = utils.ErrorResponse

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func writeData(w http.ResponseWriter, status int, data interface{}, message string) {
	writeJSON(w, status, Envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// writeError maps err onto a status code. Store and internal failures are
// logged with detail and reported generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := utils.GetHTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		utils.FromContext(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path), zap.Error(err))
	}

	var details utils.ValidationErrors
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		details = appErr.Details
	}
	writeJSON(w, status, utils.NewErrorResponse(utils.PublicMessage(err), details))
}

// intParam reads an optional integer query parameter; absent means 0.
func intParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, utils.NewValidationError("Invalid query parameter",
			utils.ValidationErrors{{Field: name, Message: "must be an integer"}})
	}
	return v, nil
}
