package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"interview-portal/internal/archive"
	"interview-portal/internal/directory"
	"interview-portal/internal/session"
	"interview-portal/internal/speech"
)

// Лимит размера загрузок (резюме, список, аудио).
const maxUploadBytes = 32 << 20

// handleDirectoryUpload загружает список кандидатов рекрутера.
// Новый список полностью заменяет прежний.
func (s *Server) handleDirectoryUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "некорректная форма загрузки")
		return
	}

	file, _, err := r.FormFile("shortlist")
	if err != nil {
		writeError(w, http.StatusBadRequest, "файл списка не передан")
		return
	}
	defer file.Close()

	dir, err := directory.Load(file)
	if err != nil {
		if errors.Is(err, directory.ErrMissingColumn) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.directory.Replace(dir)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"loaded":     true,
		"candidates": dir.Len(),
	})
}

// handleVerify верифицирует кандидата и начинает интервью.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "некорректная форма загрузки")
		return
	}

	in := session.VerifyInput{Name: r.FormValue("name")}

	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "ошибка чтения резюме")
			return
		}
		in.Resume = data
		in.ResumeName = header.Filename
	}

	if err := s.session.Verify(r.Context(), in); err != nil {
		writeError(w, verifyStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.session.Progress())
}

// verifyStatus переводит отказ верификации в HTTP статус.
func verifyStatus(err error) int {
	switch {
	case errors.Is(err, directory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNotVerifying):
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

// handleQuestion возвращает текущий вопрос и его озвучку.
// Озвучка синтезируется один раз на вопрос: повторный показ приходит
// без аудио.
func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	progress := s.session.Progress()
	if progress.State != session.StateInterviewing {
		writeError(w, http.StatusConflict, "сессия не в фазе вопросов")
		return
	}

	response := map[string]interface{}{
		"question":       progress.Question,
		"question_index": progress.QuestionIndex,
		"question_total": progress.QuestionTotal,
	}
	if audio := s.session.QuestionAudio(r.Context()); audio != nil {
		response["audio"] = base64.StdEncoding.EncodeToString(audio)
	}

	writeJSON(w, http.StatusOK, response)
}

// handleAnswer принимает ответ кандидата: аудиозапись, печатный текст
// или оба (аудио в приоритете, текст — откат).
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "некорректная форма загрузки")
		return
	}

	in := speech.AnswerInput{Text: r.FormValue("text")}

	if file, header, err := r.FormFile("audio"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "ошибка чтения аудио")
			return
		}
		in.Audio = data
		in.AudioName = header.Filename
	}

	if err := s.session.SubmitAnswer(r.Context(), in); err != nil {
		switch {
		case errors.Is(err, speech.ErrEmptyAnswer):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, session.ErrNotInterviewing):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, s.session.Progress())
}

// handleResults возвращает результат завершенного интервью кандидату.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	record, err := s.session.Record()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// handleReset начинает новую сессию для следующего кандидата.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.session.Reset()
	writeJSON(w, http.StatusOK, s.session.Progress())
}

type loginRequest struct {
	Password string `json:"password"`
}

// handleRecruiterLogin проверяет пароль рекрутера.
func (s *Server) handleRecruiterLogin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	if err := s.gate.Verify(req.Password); err != nil {
		s.logger.Warn("неудачная попытка входа рекрутера")
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	s.authMu.Lock()
	s.authenticated = true
	s.authMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// handleRecruiterLogout сбрасывает вход рекрутера.
func (s *Server) handleRecruiterLogout(w http.ResponseWriter, r *http.Request) {
	s.authMu.Lock()
	s.authenticated = false
	s.authMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}

// recruiterAuthorized сообщает, открыт ли раздел рекрутера.
func (s *Server) recruiterAuthorized() bool {
	s.authMu.Lock()
	defer s.authMu.Unlock()
	return s.authenticated
}

type interviewSummary struct {
	CandidateName string `json:"candidate_name"`
	Timestamp     string `json:"timestamp"`
	TotalScore    int    `json:"total_score"`
}

// handleRecruiterInterviews возвращает сводку завершенных интервью.
func (s *Server) handleRecruiterInterviews(w http.ResponseWriter, r *http.Request) {
	if !s.recruiterAuthorized() {
		writeError(w, http.StatusUnauthorized, "требуется вход рекрутера")
		return
	}

	records := s.archive.GetAll()
	summaries := make([]interviewSummary, 0, len(records))
	for name, record := range records {
		summaries = append(summaries, interviewSummary{
			CandidateName: name,
			Timestamp:     record.Timestamp,
			TotalScore:    record.TotalScore,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":      len(summaries),
		"interviews": summaries,
	})
}

// handleRecruiterTranscript отдает текстовый транскрипт кандидата и
// сохраняет его копию в директорию экспорта.
func (s *Server) handleRecruiterTranscript(w http.ResponseWriter, r *http.Request) {
	if !s.recruiterAuthorized() {
		writeError(w, http.StatusUnauthorized, "требуется вход рекрутера")
		return
	}

	name := r.URL.Query().Get("name")
	record, err := s.archive.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	if _, err := archive.WriteTranscript(s.transcriptDir, record); err != nil {
		s.logger.Warn("не удалось сохранить файл транскрипта", zap.Error(err))
	}
	s.metrics.IncrementTranscriptsExported()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", archive.TranscriptFileName(record.CandidateName)))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, archive.FormatTranscript(record))
}

// handleMetrics возвращает счетчики портала.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}
