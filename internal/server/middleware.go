package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// withLogging оборачивает обработчик логированием запросов.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.logger.Info("запрос обработан",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	}
}

// requireMethod отклоняет запросы с неподходящим HTTP методом.
func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeError(w, http.StatusMethodNotAllowed, "метод не поддерживается")
			return
		}
		next(w, r)
	}
}

// writeJSON пишет JSON ответ.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeError пишет JSON ответ с ошибкой.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}
