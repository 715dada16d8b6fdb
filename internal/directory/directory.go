package directory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrMissingColumn — во входных данных нет обязательной колонки Name.
	ErrMissingColumn = errors.New("колонка Name отсутствует в списке кандидатов")
	// ErrNotFound — имя кандидата не найдено в загруженном списке.
	ErrNotFound = errors.New("кандидат не найден в списке")
)

// Имена колонок входной таблицы.
const (
	columnName = "Name"
	columnJob  = "Job Description"
)

// Candidate представляет одну запись списка кандидатов.
// Записи неизменяемы после загрузки списка.
type Candidate struct {
	Name           string
	JobDescription string
}

// Directory — загруженный список кандидатов рекрутера.
type Directory struct {
	candidates []Candidate
}

// Load читает табличный список кандидатов (CSV с заголовком).
// Колонка Name обязательна; при отсутствии Job Description описания
// вакансий считаются пустыми для всех строк.
func Load(r io.Reader) (*Directory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrMissingColumn
	}

	header := records[0]
	nameIdx := -1
	jobIdx := -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case columnName:
			nameIdx = i
		case columnJob:
			jobIdx = i
		}
	}

	if nameIdx < 0 {
		return nil, ErrMissingColumn
	}

	dir := &Directory{}
	for _, row := range records[1:] {
		if nameIdx >= len(row) {
			continue
		}

		candidate := Candidate{Name: row[nameIdx]}
		if jobIdx >= 0 && jobIdx < len(row) {
			candidate.JobDescription = row[jobIdx]
		}
		dir.candidates = append(dir.candidates, candidate)
	}

	return dir, nil
}

// Find ищет кандидата по имени без учета регистра и краевых пробелов.
// При нескольких совпадениях возвращается первая строка списка —
// поведение задокументировано, дубликаты не считаются ошибкой.
func (d *Directory) Find(name string) (Candidate, error) {
	query := normalize(name)
	for _, c := range d.candidates {
		if normalize(c.Name) == query {
			return c, nil
		}
	}
	return Candidate{}, ErrNotFound
}

// Len возвращает количество записей в списке.
func (d *Directory) Len() int {
	return len(d.candidates)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
