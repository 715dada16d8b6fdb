package extract

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// TextExtractor извлекает текст из бинарных документов (PDF, DOC, DOCX).
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

// Service извлекает текст резюме из загруженного файла.
// Ошибок наружу нет: неподдерживаемый формат и отказ извлечения
// деградируют до пустой строки с предупреждением в логе.
type Service struct {
	binary TextExtractor
	logger *zap.Logger
}

// NewService создает сервис извлечения текста.
// binary может быть nil — тогда поддерживаются только .txt файлы.
func NewService(binary TextExtractor, logger *zap.Logger) *Service {
	return &Service{binary: binary, logger: logger}
}

// Extract возвращает текст документа по расширению файла.
func (s *Service) Extract(ctx context.Context, filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt":
		return string(data)
	case ".pdf", ".doc", ".docx":
		if s.binary == nil {
			s.logger.Warn("извлечение бинарных документов не настроено",
				zap.String("file", filename))
			return ""
		}

		text, err := s.binary.ExtractText(ctx, filename, data)
		if err != nil {
			s.logger.Warn("ошибка извлечения текста документа",
				zap.String("file", filename), zap.Error(err))
			return ""
		}
		return text
	default:
		s.logger.Warn("неподдерживаемый формат документа",
			zap.String("file", filename), zap.String("ext", ext))
		return ""
	}
}
