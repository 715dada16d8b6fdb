package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPExtractor извлекает текст через внешний сервис конвертации
// документов (PDF/DOCX парсеры вынесены в отдельный процесс).
type HTTPExtractor struct {
	baseURL string
	client  *http.Client
}

type extractResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// NewHTTPExtractor создает клиент сервиса извлечения текста.
func NewHTTPExtractor(baseURL string, timeout time.Duration) *HTTPExtractor {
	return &HTTPExtractor{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// ExtractText отправляет документ на извлечение текста.
func (e *HTTPExtractor) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/extract?name=%s", e.baseURL, url.QueryEscape(filename))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP ошибка %d: %s", resp.StatusCode, string(body))
	}

	var parsed extractResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	if parsed.Error != "" {
		return "", fmt.Errorf("сервис извлечения вернул ошибку: %s", parsed.Error)
	}

	return parsed.Text, nil
}
