package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Synthesizer озвучивает текст вопроса.
// Отказ синтеза не фатален: вызывающий получает nil и показывает вопрос
// только текстом.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) []byte
}

// HTTPSynthesizer — клиент внешнего сервиса синтеза речи.
type HTTPSynthesizer struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPSynthesizer создает клиент сервиса синтеза.
func NewHTTPSynthesizer(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPSynthesizer {
	return &HTTPSynthesizer{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Synthesize возвращает аудио озвученного текста, nil при отказе.
func (s *HTTPSynthesizer) Synthesize(ctx context.Context, text, lang string) []byte {
	if lang == "" {
		lang = "en"
	}

	endpoint := fmt.Sprintf("%s/synthesize?lang=%s&text=%s",
		s.baseURL, url.QueryEscape(lang), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.logger.Warn("ошибка создания запроса синтеза", zap.Error(err))
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("сервис синтеза недоступен", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("ошибка сервиса синтеза", zap.Int("status", resp.StatusCode))
		return nil
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Warn("ошибка чтения аудио", zap.Error(err))
		return nil
	}

	return audio
}
