package extract

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	return f.text, f.err
}

func TestExtractTxt(t *testing.T) {
	s := NewService(nil, zap.NewNop())

	got := s.Extract(context.Background(), "resume.TXT", []byte("plain resume text"))
	if got != "plain resume text" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractBinaryDelegates(t *testing.T) {
	s := NewService(fakeExtractor{text: "pdf text"}, zap.NewNop())

	for _, name := range []string{"resume.pdf", "resume.doc", "resume.docx"} {
		if got := s.Extract(context.Background(), name, []byte{1, 2}); got != "pdf text" {
			t.Errorf("Extract(%q) = %q, ожидалась делегация", name, got)
		}
	}
}

// Отказы извлечения деградируют до пустой строки, без ошибок наружу.
func TestExtractDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		service *Service
		file    string
	}{
		{"неподдерживаемый формат", NewService(nil, zap.NewNop()), "resume.exe"},
		{"бинарный без экстрактора", NewService(nil, zap.NewNop()), "resume.pdf"},
		{"ошибка экстрактора", NewService(fakeExtractor{err: errors.New("boom")}, zap.NewNop()), "resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.service.Extract(context.Background(), tt.file, []byte("data")); got != "" {
				t.Errorf("Extract() = %q, ожидалась пустая строка", got)
			}
		})
	}
}
