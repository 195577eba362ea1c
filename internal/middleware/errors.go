package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API's JSON error envelope. It matches the shape the
// handler package uses so clients see one error format.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
