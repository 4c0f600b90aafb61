package middleware

import (
	"encoding/json"
	"net/http"
)

// respondError writes a minimal JSON error body. Guard middlewares reject
// before any handler runs, so they carry their own writer.
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
