package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Recognizer преобразует аудио ответа кандидата в текст.
// По контракту внешнего сервиса отказ возвращается сигнальной строкой,
// а не ошибкой.
type Recognizer interface {
	Transcribe(ctx context.Context, audio []byte) string
}

// HTTPRecognizer — клиент внешнего сервиса распознавания речи.
type HTTPRecognizer struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

type recognizeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// NewHTTPRecognizer создает клиент сервиса распознавания.
func NewHTTPRecognizer(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPRecognizer {
	return &HTTPRecognizer{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Transcribe отправляет аудио на распознавание.
// Любой отказ кодируется сигнальной строкой из result.go.
func (r *HTTPRecognizer) Transcribe(ctx context.Context, audio []byte) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		r.baseURL+"/recognize", bytes.NewReader(audio))
	if err != nil {
		return SentinelErrorPrefix + err.Error()
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("сервис распознавания недоступен", zap.Error(err))
		return SentinelServiceError
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return SentinelErrorPrefix + err.Error()
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("ошибка сервиса распознавания",
			zap.Int("status", resp.StatusCode))
		return SentinelErrorPrefix + fmt.Sprintf("status %d: %s", resp.StatusCode, string(body))
	}

	var parsed recognizeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return SentinelErrorPrefix + err.Error()
	}

	if parsed.Error != "" || parsed.Text == "" {
		return SentinelUnrecognized
	}

	return parsed.Text
}
