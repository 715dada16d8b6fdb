package speech

import "strings"

// Сигнальные строки внешнего сервиса распознавания.
// Сервис сигнализирует отказ текстом, а не ошибкой; значения фиксированы.
const (
	SentinelUnrecognized = "Could not understand audio"
	SentinelServiceError = "Speech service error"
	SentinelErrorPrefix  = "Error: "
)

// TranscriptKind — тип результата распознавания.
type TranscriptKind int

const (
	// TranscriptNone — распознавание не выполнялось.
	TranscriptNone TranscriptKind = iota
	// TranscriptRecognized — речь распознана, текст пригоден как ответ.
	TranscriptRecognized
	// TranscriptUnrecognized — сервис не разобрал аудио.
	TranscriptUnrecognized
	// TranscriptServiceError — сервис распознавания недоступен.
	TranscriptServiceError
	// TranscriptFailed — прочий отказ с деталями.
	TranscriptFailed
)

// TranscriptResult — типизированный результат распознавания.
// Заменяет сопоставление сигнальных строк во внутреннем коде:
// префиксы разбираются ровно один раз, на границе сервиса.
type TranscriptResult struct {
	Kind TranscriptKind
	Text string
}

// Recognized сообщает, пригоден ли текст как ответ кандидата.
func (r TranscriptResult) Recognized() bool {
	return r.Kind == TranscriptRecognized
}

// Failed сообщает, что распознавание выполнялось и не удалось.
func (r TranscriptResult) Failed() bool {
	switch r.Kind {
	case TranscriptUnrecognized, TranscriptServiceError, TranscriptFailed:
		return true
	}
	return false
}

// DecodeTranscript разбирает сырой ответ сервиса распознавания.
// Строки с префиксами "Could not", "Speech service" и "Error" считаются
// отказом, все остальное — распознанным текстом.
func DecodeTranscript(raw string) TranscriptResult {
	switch {
	case strings.HasPrefix(raw, "Could not"):
		return TranscriptResult{Kind: TranscriptUnrecognized, Text: raw}
	case strings.HasPrefix(raw, "Speech service"):
		return TranscriptResult{Kind: TranscriptServiceError, Text: raw}
	case strings.HasPrefix(raw, "Error"):
		return TranscriptResult{Kind: TranscriptFailed, Text: raw}
	}
	return TranscriptResult{Kind: TranscriptRecognized, Text: raw}
}
