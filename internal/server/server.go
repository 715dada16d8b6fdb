package server

import (
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"interview-portal/internal/archive"
	"interview-portal/internal/auth"
	"interview-portal/internal/config"
	"interview-portal/internal/directory"
	"interview-portal/internal/metrics"
	"interview-portal/internal/session"
)

// Server — HTTP поверхность портала интервью.
// Процесс обслуживает одну логическую сессию кандидата; состояние
// живет в памяти между запросами.
type Server struct {
	session   *session.Session
	directory *directory.Service
	archive   *archive.Archive
	gate      *auth.Gate
	metrics   *metrics.Metrics
	logger    *zap.Logger

	transcriptDir string

	// authenticated — булев шлюз раздела рекрутера, без токенов.
	authMu        sync.Mutex
	authenticated bool
}

// New создает HTTP сервер портала.
func New(sess *session.Session, dir *directory.Service, arc *archive.Archive,
	gate *auth.Gate, m *metrics.Metrics, cfg *config.AppConfig, logger *zap.Logger) *Server {
	return &Server{
		session:       sess,
		directory:     dir,
		archive:       arc,
		gate:          gate,
		metrics:       m,
		logger:        logger,
		transcriptDir: cfg.Storage.TranscriptDir,
	}
}

// Routes собирает маршруты портала.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/directory", s.withLogging(requireMethod(http.MethodPost, s.handleDirectoryUpload)))
	mux.HandleFunc("/api/verify", s.withLogging(requireMethod(http.MethodPost, s.handleVerify)))
	mux.HandleFunc("/api/question", s.withLogging(requireMethod(http.MethodGet, s.handleQuestion)))
	mux.HandleFunc("/api/answer", s.withLogging(requireMethod(http.MethodPost, s.handleAnswer)))
	mux.HandleFunc("/api/results", s.withLogging(requireMethod(http.MethodGet, s.handleResults)))
	mux.HandleFunc("/api/session/reset", s.withLogging(requireMethod(http.MethodPost, s.handleReset)))

	mux.HandleFunc("/api/recruiter/login", s.withLogging(requireMethod(http.MethodPost, s.handleRecruiterLogin)))
	mux.HandleFunc("/api/recruiter/logout", s.withLogging(requireMethod(http.MethodPost, s.handleRecruiterLogout)))
	mux.HandleFunc("/api/recruiter/interviews", s.withLogging(requireMethod(http.MethodGet, s.handleRecruiterInterviews)))
	mux.HandleFunc("/api/recruiter/transcript", s.withLogging(requireMethod(http.MethodGet, s.handleRecruiterTranscript)))

	mux.HandleFunc("/api/metrics", s.withLogging(requireMethod(http.MethodGet, s.handleMetrics)))

	return mux
}

// Addr возвращает адрес прослушивания для конфигурации.
func Addr(cfg *config.ServerConfig) string {
	return fmt.Sprintf(":%d", cfg.Port)
}
