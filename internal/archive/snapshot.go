package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveResult сохраняет снимок завершенного интервью в JSON файл.
// Снимки — удобство для рекрутера, долговечность хранения процессом
// не гарантируется: источником истины остается архив в памяти.
func SaveResult(dir string, record *InterviewRecord) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}

	filename := fmt.Sprintf("interview_%s.json", record.CandidateName)
	path := filepath.Join(dir, filename)

	jsonData, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации результата: %w", err)
	}

	err = os.WriteFile(path, jsonData, 0644)
	if err != nil {
		return fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}

	return nil
}

// LoadResult загружает снимок интервью кандидата из JSON файла.
func LoadResult(dir, candidateName string) (*InterviewRecord, error) {
	filename := fmt.Sprintf("interview_%s.json", candidateName)
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}

	var record InterviewRecord
	err = json.Unmarshal(data, &record)
	if err != nil {
		return nil, fmt.Errorf("ошибка десериализации JSON: %w", err)
	}

	return &record, nil
}

// ListResults возвращает имена кандидатов с сохраненными снимками.
func ListResults(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения директории %s: %w", dir, err)
	}

	var results []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "interview_") {
			results = append(results, strings.TrimSuffix(strings.TrimPrefix(name, "interview_"), ".json"))
		}
	}

	return results, nil
}
