package questions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog представляет каталог вопросов интервью.
// Для каждого трека ровно TriadSize вопросов.
type Catalog struct {
	Tracks []Track `yaml:"tracks"`
	// Fallback — вопросы, когда ни один трек не подошел по ключевому слову.
	Fallback []string `yaml:"fallback"`
}

// Track представляет один тематический трек вопросов.
type Track struct {
	Keyword   string   `yaml:"keyword"`
	Questions []string `yaml:"questions"`
}

// TriadSize — фиксированное количество вопросов на интервью.
const TriadSize = 3

// DefaultCatalog возвращает встроенный каталог вопросов.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Tracks: []Track{
			{
				Keyword: "developer",
				Questions: []string{
					"Describe your experience with programming languages",
					"How do you approach debugging complex issues?",
					"Explain your experience with version control systems",
				},
			},
			{
				Keyword: "marketing",
				Questions: []string{
					"Describe your experience with digital marketing campaigns",
					"How would you approach SEO for a new website?",
					"What metrics would you track for campaign success?",
				},
			},
		},
		Fallback: []string{
			"Tell us about your relevant experience",
			"What are your strengths for this role?",
			"Why are you interested in this position?",
		},
	}
}

// LoadCatalog загружает каталог вопросов из YAML файла.
func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	var catalog Catalog
	err = yaml.Unmarshal(data, &catalog)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация каталога
	err = validateCatalog(&catalog)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации каталога: %w", err)
	}

	return &catalog, nil
}

// validateCatalog проверяет корректность каталога вопросов
func validateCatalog(catalog *Catalog) error {
	if len(catalog.Fallback) != TriadSize {
		return fmt.Errorf("fallback должен содержать %d вопроса, получено %d",
			TriadSize, len(catalog.Fallback))
	}

	for i, track := range catalog.Tracks {
		if track.Keyword == "" {
			return fmt.Errorf("трек %d должен иметь keyword", i)
		}

		if len(track.Questions) != TriadSize {
			return fmt.Errorf("трек %q должен содержать %d вопроса, получено %d",
				track.Keyword, TriadSize, len(track.Questions))
		}
	}

	return nil
}
