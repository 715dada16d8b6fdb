package archive

import (
	"errors"
	"sync"
)

// ErrRecordNotFound — в архиве нет записи для кандидата.
var ErrRecordNotFound = errors.New("запись интервью не найдена")

// Archive хранит завершенные интервью на время жизни процесса.
// Ключ — имя кандидата; повторное завершение с тем же именем
// перезаписывает прежнюю запись. Карта защищена мьютексом на случай
// многосессионного развертывания.
type Archive struct {
	mu      sync.RWMutex
	records map[string]*InterviewRecord
}

// New создает пустой архив интервью.
func New() *Archive {
	return &Archive{
		records: make(map[string]*InterviewRecord),
	}
}

// Put сохраняет запись, перезаписывая прежнюю с тем же именем.
func (a *Archive) Put(candidateName string, record *InterviewRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records[candidateName] = record
}

// Get возвращает запись кандидата.
func (a *Archive) Get(candidateName string) (*InterviewRecord, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	record, ok := a.records[candidateName]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

// GetAll возвращает снимок всех записей.
// Порядок вставки после перезаписей не сохраняется.
func (a *Archive) GetAll() map[string]*InterviewRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snapshot := make(map[string]*InterviewRecord, len(a.records))
	for name, record := range a.records {
		snapshot[name] = record
	}
	return snapshot
}

// Len возвращает количество завершенных интервью.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.records)
}
