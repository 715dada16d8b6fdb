package config

import (
	"os"
	"strconv"
	"time"
)

// Пароль рекрутера по умолчанию, когда RECRUITER_PASSWORD не задан.
const DefaultRecruiterPassword = "admin123"

type AppConfig struct {
	Server    ServerConfig
	Recruiter RecruiterConfig
	Speech    SpeechConfig
	Extract   ExtractConfig
	Storage   StorageConfig
	Directory DirectoryConfig
	Questions QuestionsConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type RecruiterConfig struct {
	Password string
}

type SpeechConfig struct {
	RecognizerURL  string
	SynthesizerURL string
	Timeout        time.Duration
}

type ExtractConfig struct {
	ServiceURL string
	Timeout    time.Duration
}

type StorageConfig struct {
	TranscriptDir string
	ResultsDir    string
}

type DirectoryConfig struct {
	ShortlistPath string
	Watch         bool
}

type QuestionsConfig struct {
	CatalogPath string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Recruiter: RecruiterConfig{
			Password: getEnv("RECRUITER_PASSWORD", DefaultRecruiterPassword),
		},
		Speech: SpeechConfig{
			RecognizerURL:  getEnv("SPEECH_API_URL", ""),
			SynthesizerURL: getEnv("TTS_API_URL", ""),
			Timeout:        getEnvAsDuration("SPEECH_TIMEOUT", 60*time.Second),
		},
		Extract: ExtractConfig{
			ServiceURL: getEnv("EXTRACTOR_URL", ""),
			Timeout:    getEnvAsDuration("EXTRACTOR_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			TranscriptDir: getEnv("TRANSCRIPT_DIR", "transcripts"),
			ResultsDir:    getEnv("RESULTS_DIR", "results"),
		},
		Directory: DirectoryConfig{
			ShortlistPath: getEnv("SHORTLIST_PATH", ""),
			Watch:         getEnvAsBool("SHORTLIST_WATCH", true),
		},
		Questions: QuestionsConfig{
			CatalogPath: getEnv("QUESTION_CATALOG", ""),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
