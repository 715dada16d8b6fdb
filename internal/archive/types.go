package archive

// TimestampLayout — формат отметки времени создания записи интервью.
const TimestampLayout = "2006-01-02 15:04:05"

// InterviewRecord представляет результат интервью одного кандидата.
// Создается при успешной верификации, пополняется ответами по ходу
// сессии и получает оценки при завершении.
type InterviewRecord struct {
	CandidateName    string   `json:"candidate_name"`
	JobDescription   string   `json:"jd"`
	VerificationText string   `json:"verification_text"`
	Timestamp        string   `json:"timestamp"`
	Answers          []Answer `json:"qa"`
	// TotalScore равен 0 до завершения оценивания: валидные итоги
	// не меньше количества вопросов.
	TotalScore int `json:"total_score,omitempty"`
}

// Answer представляет один вопрос интервью и ответ кандидата.
type Answer struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	AudioFile string `json:"audio_file,omitempty"`
	// Score равен 0 до оценивания: валидные оценки лежат в [1,10].
	Score    int    `json:"score,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// Scored сообщает, прошла ли запись оценивание.
func (r *InterviewRecord) Scored() bool {
	return r.TotalScore > 0
}
