package speech

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyAnswer — ни аудио, ни печатный текст не дали пригодного ответа.
var ErrEmptyAnswer = errors.New("ответ пуст: нужна запись или печатный текст")

// AnswerInput — материалы одного ответа кандидата.
type AnswerInput struct {
	Audio     []byte
	AudioName string
	Text      string
}

// ResolvedAnswer — итоговый текст ответа и его источник.
type ResolvedAnswer struct {
	Text string
	// AudioName непустой, когда ответ получен из аудиозаписи.
	AudioName string
	// Transcript — результат распознавания, когда аудио было загружено.
	Transcript TranscriptResult
}

// ResolveAnswer выбирает текст ответа по правилу отката:
// сначала распознанное аудио, затем печатный текст. Нераспознанное
// аудио не ошибка — срабатывает откат на текст.
func ResolveAnswer(ctx context.Context, recognizer Recognizer, in AnswerInput) (ResolvedAnswer, error) {
	resolved := ResolvedAnswer{}

	if len(in.Audio) > 0 && recognizer != nil {
		resolved.Transcript = DecodeTranscript(recognizer.Transcribe(ctx, in.Audio))
		if resolved.Transcript.Recognized() {
			resolved.Text = resolved.Transcript.Text
			resolved.AudioName = in.AudioName
			return resolved, nil
		}
	}

	if text := strings.TrimSpace(in.Text); text != "" {
		resolved.Text = text
		return resolved, nil
	}

	// Результат распознавания сохраняется и при отказе: вызывающий
	// различает пустой ввод и неудачную расшифровку.
	return resolved, ErrEmptyAnswer
}
