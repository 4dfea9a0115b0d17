package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"digistore/apperr"
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type APIResponse struct {
	Success    bool              `json:"success"`
	StatusCode int               `json:"status_code"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, resp APIResponse) {
	resp.StatusCode = status
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func WriteSuccess(w http.ResponseWriter, data interface{}, message string) {
	WriteJSON(w, http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

func WriteCreated(w http.ResponseWriter, data interface{}, message string) {
	WriteJSON(w, http.StatusCreated, APIResponse{Success: true, Message: message, Data: data})
}

func WritePaginated(w http.ResponseWriter, data interface{}, p Pagination, message string) {
	WriteJSON(w, http.StatusOK, APIResponse{Success: true, Message: message, Data: data, Pagination: &p})
}

// WriteError maps an application error to its response. Unclassified errors
// are logged and downgraded to a bare 500.
func WriteError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Internal(err)
	}
	if ae.Status >= http.StatusInternalServerError {
		log.Printf("[http] internal error: %v", err)
		WriteJSON(w, ae.Status, APIResponse{Success: false, Message: "Internal server error"})
		return
	}
	WriteJSON(w, ae.Status, APIResponse{Success: false, Message: ae.Message, Errors: ae.Fields})
}

// GetStringValue returns the value of a nullable string pointer or empty string if nil
func GetStringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
