package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"interview-portal/internal/archive"
	"interview-portal/internal/auth"
	"interview-portal/internal/config"
	"interview-portal/internal/directory"
	"interview-portal/internal/extract"
	"interview-portal/internal/metrics"
	"interview-portal/internal/questions"
	"interview-portal/internal/session"
)

func newTestServer(t *testing.T) (*Server, *http.ServeMux) {
	t.Helper()

	nop := zap.NewNop()
	dirService := directory.NewService(nop)
	arc := archive.New()
	m := metrics.NewMetrics()

	sess := session.New(session.Deps{
		Directory:  dirService,
		Generator:  questions.NewGenerator(nil),
		Extractor:  extract.NewService(nil, nop),
		Archive:    arc,
		Metrics:    m,
		Logger:     nop,
		ResultsDir: t.TempDir(),
	})

	cfg := &config.AppConfig{}
	cfg.Storage.TranscriptDir = t.TempDir()

	srv := New(sess, dirService, arc, auth.NewGate("admin123"), m, cfg, nop)
	return srv, srv.Routes()
}

// multipartBody собирает multipart форму из полей и файлов.
func multipartBody(t *testing.T, fields map[string]string, files map[string][2]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	for field, file := range files {
		part, err := writer.CreateFormFile(field, file[0])
		if err != nil {
			t.Fatalf("ошибка формы: %v", err)
		}
		part.Write([]byte(file[1]))
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func uploadDirectory(t *testing.T, mux *http.ServeMux, csv string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, nil, map[string][2]string{
		"shortlist": {"shortlist.csv", csv},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/directory", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func verifyCandidate(t *testing.T, mux *http.ServeMux, name string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t,
		map[string]string{"name": name},
		map[string][2]string{"resume": {"resume.txt", "Solid engineering background."}})
	req := httptest.NewRequest(http.MethodPost, "/api/verify", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func submitAnswer(t *testing.T, mux *http.ServeMux, text string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, map[string]string{"text": text}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/answer", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, mux *http.ServeMux, password string) *httptest.ResponseRecorder {
	t.Helper()

	payload, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/recruiter/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestDirectoryUpload(t *testing.T) {
	_, mux := newTestServer(t)

	rec := uploadDirectory(t, mux, "Name,Job Description\nAlice,Developer\n")
	if rec.Code != http.StatusOK {
		t.Fatalf("код = %d, тело: %s", rec.Code, rec.Body.String())
	}
}

func TestDirectoryUploadMissingColumn(t *testing.T) {
	_, mux := newTestServer(t)

	rec := uploadDirectory(t, mux, "Candidate\nAlice\n")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("код = %d, ожидался 422", rec.Code)
	}
}

func TestInterviewFlowOverHTTP(t *testing.T) {
	_, mux := newTestServer(t)

	uploadDirectory(t, mux, "Name,Job Description\nAlice,Senior Developer\n")

	if rec := verifyCandidate(t, mux, "alice"); rec.Code != http.StatusOK {
		t.Fatalf("verify код = %d, тело: %s", rec.Code, rec.Body.String())
	}

	// Текущий вопрос доступен
	req := httptest.NewRequest(http.MethodGet, "/api/question", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("question код = %d", rec.Code)
	}

	// Три ответа завершают интервью
	for i := 0; i < questions.TriadSize; i++ {
		if rec := submitAnswer(t, mux, strings.Repeat("a", 60)); rec.Code != http.StatusOK {
			t.Fatalf("answer %d код = %d, тело: %s", i, rec.Code, rec.Body.String())
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/api/results", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("results код = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total_score":9`) {
		t.Errorf("в результатах нет итоговой оценки 9: %s", rec.Body.String())
	}
}

func TestVerifyUnknownCandidate(t *testing.T) {
	_, mux := newTestServer(t)
	uploadDirectory(t, mux, "Name\nAlice\n")

	if rec := verifyCandidate(t, mux, "Charlie"); rec.Code != http.StatusNotFound {
		t.Errorf("код = %d, ожидался 404", rec.Code)
	}
}

func TestEmptyAnswerRejected(t *testing.T) {
	_, mux := newTestServer(t)
	uploadDirectory(t, mux, "Name\nAlice\n")
	verifyCandidate(t, mux, "Alice")

	if rec := submitAnswer(t, mux, "   "); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("код = %d, ожидался 422", rec.Code)
	}
}

func TestRecruiterLogin(t *testing.T) {
	_, mux := newTestServer(t)

	if rec := login(t, mux, "wrong"); rec.Code != http.StatusUnauthorized {
		t.Errorf("неверный пароль: код = %d, ожидался 401", rec.Code)
	}
	if rec := login(t, mux, "admin123"); rec.Code != http.StatusOK {
		t.Errorf("верный пароль: код = %d", rec.Code)
	}
}

// Раздел рекрутера закрыт до входа.
func TestRecruiterEndpointsRequireLogin(t *testing.T) {
	_, mux := newTestServer(t)

	for _, path := range []string{"/api/recruiter/interviews", "/api/recruiter/transcript?name=Alice"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s код = %d, ожидался 401", path, rec.Code)
		}
	}
}

func TestRecruiterTranscriptDownload(t *testing.T) {
	srv, mux := newTestServer(t)

	srv.archive.Put("Alice", &archive.InterviewRecord{
		CandidateName: "Alice",
		Timestamp:     "2026-09-01 10:00:00",
		TotalScore:    8,
		Answers: []archive.Answer{
			{Question: "Q1", Answer: "A1", Score: 8, Feedback: "Good response"},
		},
	})
	login(t, mux, "admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/recruiter/transcript?name=Alice", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("код = %d", rec.Code)
	}
	if disposition := rec.Header().Get("Content-Disposition"); !strings.Contains(disposition, "Alice_interview.txt") {
		t.Errorf("Content-Disposition = %q", disposition)
	}
	if !strings.Contains(rec.Body.String(), "Interview Transcript - Alice") {
		t.Errorf("тело транскрипта: %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, mux := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("код = %d", rec.Code)
	}
}
