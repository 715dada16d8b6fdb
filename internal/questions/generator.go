package questions

import "strings"

// Generator подбирает вопросы интервью по описанию вакансии.
type Generator struct {
	catalog *Catalog
}

// NewGenerator создает генератор вопросов.
// При nil каталоге используется встроенный.
func NewGenerator(catalog *Catalog) *Generator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Generator{catalog: catalog}
}

// Generate возвращает упорядоченный список вопросов для описания вакансии.
// Выбор детерминированный: первый трек, чье ключевое слово встречается в
// описании (без учета регистра), иначе общие вопросы. Всегда ровно
// TriadSize вопросов, ошибок не бывает.
func (g *Generator) Generate(jobDescription string) []string {
	jd := strings.ToLower(jobDescription)

	selected := g.catalog.Fallback
	for _, track := range g.catalog.Tracks {
		if strings.Contains(jd, strings.ToLower(track.Keyword)) {
			selected = track.Questions
			break
		}
	}

	// Копия, чтобы каталог оставался неизменяемым после генерации
	result := make([]string, len(selected))
	copy(result, selected)
	return result
}
