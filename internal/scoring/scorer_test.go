package scoring

import (
	"strings"
	"testing"
)

func TestEvaluateScoreBounds(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		wantScore int
		wantText  string
	}{
		{"пустой ответ", "", 1, FeedbackShort},
		{"короткий ответ", "yes", 1, FeedbackShort},
		{"45 символов", strings.Repeat("a", 45), 2, FeedbackShort},
		{"ровно 100 символов", strings.Repeat("a", 100), 5, FeedbackShort},
		{"граница хорошего ответа", strings.Repeat("a", 120), 6, FeedbackGood},
		{"очень длинный ответ", strings.Repeat("a", 5000), 10, FeedbackGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback := Evaluate(tt.answer, "q", "jd")
			if score != tt.wantScore {
				t.Errorf("Evaluate() score = %d, ожидалось %d", score, tt.wantScore)
			}
			if feedback != tt.wantText {
				t.Errorf("Evaluate() feedback = %q, ожидалось %q", feedback, tt.wantText)
			}
			if score < MinScore || score > MaxScore {
				t.Errorf("оценка %d вне диапазона [%d,%d]", score, MinScore, MaxScore)
			}
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	answer := strings.Repeat("опыт работы ", 10)

	s1, f1 := Evaluate(answer, "q", "jd")
	s2, f2 := Evaluate(answer, "q", "jd")

	if s1 != s2 || f1 != f2 {
		t.Errorf("повторная оценка дала другой результат: (%d,%q) != (%d,%q)", s1, f1, s2, f2)
	}
}

// Оценка — неубывающая ступенчатая функция длины ответа.
func TestEvaluateMonotonic(t *testing.T) {
	prev := 0
	for length := 0; length <= 300; length += 5 {
		score, _ := Evaluate(strings.Repeat("x", length), "q", "jd")
		if score < prev {
			t.Fatalf("оценка убыла на длине %d: %d < %d", length, score, prev)
		}
		prev = score
	}
}

// Длина считается в символах, не в байтах.
func TestEvaluateCountsRunes(t *testing.T) {
	// 45 кириллических символов = 90 байт
	answer := strings.Repeat("б", 45)

	score, _ := Evaluate(answer, "q", "jd")
	if score != 2 {
		t.Errorf("Evaluate() score = %d, ожидалось 2", score)
	}
}
