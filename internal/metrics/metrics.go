package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                    sync.RWMutex
	InterviewsStarted     int64
	InterviewsCompleted   int64
	AnswersSubmitted      int64
	VerificationFailures  int64
	TranscriptionFailures int64
	TranscriptsExported   int64
	LastUpdateTime        time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InterviewsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InterviewsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAnswersSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersSubmitted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementVerificationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VerificationFailures++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementTranscriptionFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranscriptionFailures++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementTranscriptsExported() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranscriptsExported++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		InterviewsStarted:     m.InterviewsStarted,
		InterviewsCompleted:   m.InterviewsCompleted,
		AnswersSubmitted:      m.AnswersSubmitted,
		VerificationFailures:  m.VerificationFailures,
		TranscriptionFailures: m.TranscriptionFailures,
		TranscriptsExported:   m.TranscriptsExported,
		LastUpdateTime:        m.LastUpdateTime,
	}
}
