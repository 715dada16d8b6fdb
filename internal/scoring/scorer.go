package scoring

import "unicode/utf8"

// Границы оценки одного ответа.
const (
	MinScore = 1
	MaxScore = 10
)

// Тексты обратной связи фиксированы.
const (
	FeedbackGood  = "Good response"
	FeedbackShort = "Could be more detailed"
)

// Evaluate оценивает ответ кандидата на вопрос.
// Оценка — заглушка-прокси: длина ответа в символах, деленная на 20,
// ограниченная диапазоном [MinScore, MaxScore]. Функция чистая и
// идемпотентная: одинаковый текст всегда дает одинаковую оценку.
func Evaluate(answer, question, jobDescription string) (int, string) {
	score := clamp(utf8.RuneCountInString(answer)/20, MinScore, MaxScore)

	feedback := FeedbackShort
	if score > 5 {
		feedback = FeedbackGood
	}

	return score, feedback
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
