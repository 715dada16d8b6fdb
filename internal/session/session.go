package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interview-portal/internal/archive"
	"interview-portal/internal/directory"
	"interview-portal/internal/extract"
	"interview-portal/internal/metrics"
	"interview-portal/internal/questions"
	"interview-portal/internal/scoring"
	"interview-portal/internal/speech"
)

// Session — машина состояний интервью одного кандидата.
// Verifying -> Interviewing -> Scoring -> Completed.
// Все поля сессии живут в одной структуре, переходы выполняются
// методами; разрозненных флагов страниц нет.
type Session struct {
	mu sync.Mutex

	state         State
	interviewID   string
	questionList  []string
	questionIndex int
	record        *archive.InterviewRecord

	// audioPlayed гарантирует один синтез озвучки на вопрос.
	audioPlayed bool
	// processing гарантирует однократный проход оценивания.
	processing bool

	directory   *directory.Service
	generator   *questions.Generator
	extractor   *extract.Service
	recognizer  speech.Recognizer
	synthesizer speech.Synthesizer
	archive     *archive.Archive
	metrics     *metrics.Metrics
	logger      *zap.Logger

	resultsDir string
}

// Deps — зависимости сессии.
type Deps struct {
	Directory   *directory.Service
	Generator   *questions.Generator
	Extractor   *extract.Service
	Recognizer  speech.Recognizer
	Synthesizer speech.Synthesizer
	Archive     *archive.Archive
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	ResultsDir  string
}

// New создает сессию в начальном состоянии Verifying.
func New(deps Deps) *Session {
	return &Session{
		state:       StateVerifying,
		directory:   deps.Directory,
		generator:   deps.Generator,
		extractor:   deps.Extractor,
		recognizer:  deps.Recognizer,
		synthesizer: deps.Synthesizer,
		archive:     deps.Archive,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		resultsDir:  deps.ResultsDir,
	}
}

// Verify проверяет кандидата и переводит сессию в фазу вопросов.
// Порядок проверок фиксирован: имя, загруженный список, поиск в списке,
// наличие резюме, извлеченный текст. Любой отказ оставляет состояние
// Verifying, кандидат может повторить с исправленным вводом.
func (s *Session) Verify(ctx context.Context, in VerifyInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateVerifying {
		return ErrNotVerifying
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		s.metrics.IncrementVerificationFailures()
		return ErrEmptyName
	}

	candidate, err := s.directory.Find(name)
	if err != nil {
		s.metrics.IncrementVerificationFailures()
		return err
	}

	if len(in.Resume) == 0 {
		s.metrics.IncrementVerificationFailures()
		return ErrMissingResume
	}

	resumeText := strings.TrimSpace(s.extractor.Extract(ctx, in.ResumeName, in.Resume))
	if resumeText == "" {
		s.metrics.IncrementVerificationFailures()
		return ErrEmptyVerificationText
	}

	jd := strings.TrimSpace(candidate.JobDescription)

	s.interviewID = uuid.New().String()
	s.questionList = s.generator.Generate(jd)
	s.questionIndex = 0
	s.audioPlayed = false
	s.processing = false
	s.record = &archive.InterviewRecord{
		CandidateName:    name,
		JobDescription:   jd,
		VerificationText: resumeText,
		Timestamp:        time.Now().Format(archive.TimestampLayout),
		Answers:          make([]archive.Answer, 0, len(s.questionList)),
	}
	s.state = StateInterviewing

	s.metrics.IncrementInterviewsStarted()
	s.logger.Info("кандидат верифицирован, интервью началось",
		zap.String("interview_id", s.interviewID),
		zap.String("candidate", name),
		zap.Int("questions", len(s.questionList)))

	return nil
}

// SubmitAnswer принимает ответ на текущий вопрос и продвигает сессию.
// Текст ответа выбирается по правилу отката: распознанное аудио, затем
// печатный текст. Отклоненный ответ не продвигает индекс; принятый
// последний ответ автоматически запускает оценивание.
func (s *Session) SubmitAnswer(ctx context.Context, in speech.AnswerInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInterviewing {
		return ErrNotInterviewing
	}

	resolved, err := speech.ResolveAnswer(ctx, s.recognizer, in)
	if resolved.Transcript.Failed() {
		s.metrics.IncrementTranscriptionFailures()
	}
	if err != nil {
		return err
	}

	s.record.Answers = append(s.record.Answers, archive.Answer{
		Question:  s.questionList[s.questionIndex],
		Answer:    resolved.Text,
		AudioFile: resolved.AudioName,
	})
	s.questionIndex++
	s.audioPlayed = false
	s.metrics.IncrementAnswersSubmitted()

	if s.questionIndex >= len(s.questionList) {
		s.state = StateScoring
		s.complete()
	}

	return nil
}

// complete оценивает ответы и архивирует запись. Вызывается под
// мьютексом, не более одного раза на сессию.
func (s *Session) complete() {
	if s.processing {
		return
	}
	s.processing = true

	total := 0
	for i := range s.record.Answers {
		qa := &s.record.Answers[i]
		score, feedback := scoring.Evaluate(qa.Answer, qa.Question, s.record.JobDescription)
		qa.Score = score
		qa.Feedback = feedback
		total += score
	}
	s.record.TotalScore = total

	s.archive.Put(s.record.CandidateName, s.record)
	s.state = StateCompleted
	s.metrics.IncrementInterviewsCompleted()

	if err := archive.SaveResult(s.resultsDir, s.record); err != nil {
		s.logger.Warn("не удалось сохранить снимок интервью", zap.Error(err))
	}

	s.logger.Info("интервью завершено",
		zap.String("interview_id", s.interviewID),
		zap.String("candidate", s.record.CandidateName),
		zap.Int("total_score", total))
}

// QuestionAudio озвучивает текущий вопрос не более одного раза.
// Повторный показ того же вопроса возвращает nil: вопрос выводится
// только текстом. Отказ синтеза тоже дает nil.
func (s *Session) QuestionAudio(ctx context.Context) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInterviewing || s.audioPlayed || s.synthesizer == nil {
		return nil
	}
	s.audioPlayed = true

	return s.synthesizer.Synthesize(ctx, s.questionList[s.questionIndex], "en")
}

// Progress возвращает текущее положение сессии.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Progress{
		State:         s.state,
		InterviewID:   s.interviewID,
		QuestionIndex: s.questionIndex,
		QuestionTotal: len(s.questionList),
	}
	if s.record != nil {
		p.CandidateName = s.record.CandidateName
	}
	if s.state == StateInterviewing && s.questionIndex < len(s.questionList) {
		p.Question = s.questionList[s.questionIndex]
	}
	return p
}

// Record возвращает запись завершенного интервью.
func (s *Session) Record() (*archive.InterviewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCompleted {
		return nil, ErrNotCompleted
	}
	return s.record, nil
}

// State возвращает текущее состояние сессии.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset начинает новую сессию: все поля сессии очищаются,
// состояние возвращается в Verifying. Архив не затрагивается.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateVerifying
	s.interviewID = ""
	s.questionList = nil
	s.questionIndex = 0
	s.audioPlayed = false
	s.processing = false
	s.record = nil
}

// String описывает сессию для логов.
func (s *Session) String() string {
	p := s.Progress()
	return fmt.Sprintf("session[%s %s %d/%d]", p.InterviewID, p.State, p.QuestionIndex, p.QuestionTotal)
}
