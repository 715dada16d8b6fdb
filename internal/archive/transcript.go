package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"interview-portal/internal/scoring"
)

// Маркер незаполненной оценки в транскрипте.
const notAvailable = "N/A"

// TranscriptFileName возвращает имя файла транскрипта кандидата.
func TranscriptFileName(candidateName string) string {
	return fmt.Sprintf("%s_interview.txt", candidateName)
}

// FormatTranscript форматирует запись интервью в текстовый транскрипт.
// Формат фиксированный: заголовок (имя, дата, итоговая оценка), затем
// блоки вопрос/ответ/оценка/отзыв в порядке сдачи. Незаполненные
// оценки выводятся как N/A, ошибок не бывает.
func FormatTranscript(record *InterviewRecord) string {
	var b strings.Builder

	total := notAvailable
	if record.Scored() {
		total = fmt.Sprintf("%d", record.TotalScore)
	}

	b.WriteString(fmt.Sprintf("Interview Transcript - %s\n", record.CandidateName))
	b.WriteString(fmt.Sprintf("Date: %s\n", record.Timestamp))
	b.WriteString(fmt.Sprintf("Total Score: %s/%d\n\n", total, scoring.MaxScore*len(record.Answers)))

	for i, qa := range record.Answers {
		score := notAvailable
		if qa.Score > 0 {
			score = fmt.Sprintf("%d", qa.Score)
		}
		feedback := qa.Feedback
		if feedback == "" {
			feedback = "None"
		}

		b.WriteString(fmt.Sprintf("Question %d: %s\n", i+1, qa.Question))
		b.WriteString(fmt.Sprintf("Answer: %s\n", qa.Answer))
		b.WriteString(fmt.Sprintf("Score: %s/%d\n", score, scoring.MaxScore))
		b.WriteString(fmt.Sprintf("Feedback: %s\n\n", feedback))
	}

	return b.String()
}

// WriteTranscript сохраняет транскрипт в файл "<имя>_interview.txt".
func WriteTranscript(dir string, record *InterviewRecord) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}

	path := filepath.Join(dir, TranscriptFileName(record.CandidateName))
	if err := os.WriteFile(path, []byte(FormatTranscript(record)), 0644); err != nil {
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}

	return path, nil
}
