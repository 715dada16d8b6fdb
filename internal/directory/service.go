package directory

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// ErrNotLoaded — список кандидатов еще не загружен.
var ErrNotLoaded = errors.New("список кандидатов не загружен")

// Service хранит текущий список кандидатов.
// Новая загрузка полностью заменяет предыдущий список.
type Service struct {
	mu      sync.RWMutex
	current *Directory
	logger  *zap.Logger
}

// NewService создает сервис списка кандидатов.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Replace устанавливает новый список, заменяя прежний.
func (s *Service) Replace(dir *Directory) {
	s.mu.Lock()
	s.current = dir
	s.mu.Unlock()

	s.logger.Info("список кандидатов загружен", zap.Int("candidates", dir.Len()))
}

// LoadFile загружает список кандидатов из CSV файла.
// При ошибке прежний список остается действующим.
func (s *Service) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла %s: %w", path, err)
	}
	defer f.Close()

	dir, err := Load(f)
	if err != nil {
		return fmt.Errorf("ошибка загрузки списка из %s: %w", path, err)
	}

	s.Replace(dir)
	return nil
}

// Loaded сообщает, загружен ли список.
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Find ищет кандидата в текущем списке.
func (s *Service) Find(name string) (Candidate, error) {
	s.mu.RLock()
	dir := s.current
	s.mu.RUnlock()

	if dir == nil {
		return Candidate{}, ErrNotLoaded
	}
	return dir.Find(name)
}

// Len возвращает размер текущего списка, 0 если список не загружен.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return 0
	}
	return s.current.Len()
}
