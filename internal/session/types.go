package session

import "errors"

// State представляет состояние сессии интервью.
type State string

const (
	// StateVerifying — ожидание верификации кандидата. Начальное состояние.
	StateVerifying State = "verifying"
	// StateInterviewing — цикл вопросов и ответов.
	StateInterviewing State = "interviewing"
	// StateScoring — оценивание ответов после последнего вопроса.
	StateScoring State = "scoring"
	// StateCompleted — интервью завершено и заархивировано.
	StateCompleted State = "completed"
)

// Ошибки верификации и хода сессии. Все они локальны и устранимы:
// состояние не продвигается, кандидат повторяет действие с
// исправленным вводом.
var (
	ErrEmptyName             = errors.New("укажите полное имя кандидата")
	ErrEmptyVerificationText = errors.New("не удалось извлечь текст из резюме")
	ErrMissingResume         = errors.New("файл резюме не загружен")
	ErrNotVerifying          = errors.New("верификация уже пройдена")
	ErrNotInterviewing       = errors.New("сессия не в фазе вопросов")
	ErrNotCompleted          = errors.New("интервью еще не завершено")
)

// VerifyInput — данные формы верификации кандидата.
type VerifyInput struct {
	Name       string
	ResumeName string
	Resume     []byte
}

// Progress — положение сессии в цикле вопросов.
type Progress struct {
	State         State  `json:"state"`
	InterviewID   string `json:"interview_id,omitempty"`
	CandidateName string `json:"candidate_name,omitempty"`
	QuestionIndex int    `json:"question_index"`
	QuestionTotal int    `json:"question_total"`
	Question      string `json:"question,omitempty"`
}
