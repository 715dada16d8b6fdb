package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"interview-portal/internal/archive"
	"interview-portal/internal/auth"
	"interview-portal/internal/config"
	"interview-portal/internal/directory"
	"interview-portal/internal/extract"
	"interview-portal/internal/logger"
	"interview-portal/internal/metrics"
	"interview-portal/internal/questions"
	"interview-portal/internal/server"
	"interview-portal/internal/session"
	"interview-portal/internal/speech"
)

func main() {
	fmt.Println("🚀 Запуск портала интервью...")

	// Переменные окружения из .env, если файл есть
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Файл .env не загружен: %v", err)
	}

	cfg := config.LoadAppConfig()

	zl, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer zl.Sync()

	fmt.Println("🔧 Инициализация сервисов...")

	// Каталог вопросов: YAML переопределение или встроенный
	catalog := questions.DefaultCatalog()
	if cfg.Questions.CatalogPath != "" {
		catalog, err = questions.LoadCatalog(cfg.Questions.CatalogPath)
		if err != nil {
			log.Fatalf("Ошибка загрузки каталога вопросов: %v", err)
		}
		fmt.Printf("✅ Каталог вопросов загружен из %s\n", cfg.Questions.CatalogPath)
	}
	generator := questions.NewGenerator(catalog)

	// Список кандидатов
	dirService := directory.NewService(zl)
	if cfg.Directory.ShortlistPath != "" {
		if err := dirService.LoadFile(cfg.Directory.ShortlistPath); err != nil {
			log.Printf("⚠️ Список кандидатов не загружен: %v", err)
			log.Println("Список можно загрузить через POST /api/directory")
		} else {
			fmt.Printf("✅ Список кандидатов: %d записей\n", dirService.Len())
		}
	}

	// Внешние сервисы речи и извлечения текста
	var recognizer speech.Recognizer
	if cfg.Speech.RecognizerURL != "" {
		recognizer = speech.NewHTTPRecognizer(cfg.Speech.RecognizerURL, cfg.Speech.Timeout, zl)
		fmt.Println("✅ Распознавание речи включено")
	} else {
		fmt.Println("• Распознавание речи отключено: только печатные ответы")
	}

	var synthesizer speech.Synthesizer
	if cfg.Speech.SynthesizerURL != "" {
		synthesizer = speech.NewHTTPSynthesizer(cfg.Speech.SynthesizerURL, cfg.Speech.Timeout, zl)
		fmt.Println("✅ Озвучка вопросов включена")
	}

	var binaryExtractor extract.TextExtractor
	if cfg.Extract.ServiceURL != "" {
		binaryExtractor = extract.NewHTTPExtractor(cfg.Extract.ServiceURL, cfg.Extract.Timeout)
		fmt.Println("✅ Извлечение PDF/DOCX включено")
	} else {
		fmt.Println("• Извлечение PDF/DOCX отключено: резюме только в TXT")
	}
	extractService := extract.NewService(binaryExtractor, zl)

	// Архив, метрики, сессия
	arc := archive.New()
	m := metrics.NewMetrics()
	sess := session.New(session.Deps{
		Directory:   dirService,
		Generator:   generator,
		Extractor:   extractService,
		Recognizer:  recognizer,
		Synthesizer: synthesizer,
		Archive:     arc,
		Metrics:     m,
		Logger:      zl,
		ResultsDir:  cfg.Storage.ResultsDir,
	})

	gate := auth.NewGate(cfg.Recruiter.Password)

	srv := server.New(sess, dirService, arc, gate, m, cfg, zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Наблюдатель файла списка кандидатов
	if cfg.Directory.ShortlistPath != "" && cfg.Directory.Watch {
		watcher, err := directory.NewWatcher(dirService, cfg.Directory.ShortlistPath, zl)
		if err != nil {
			log.Printf("⚠️ Наблюдение за списком не запущено: %v", err)
		} else {
			defer watcher.Stop()
			go watcher.Run(ctx)
			fmt.Println("✅ Автоперезагрузка списка кандидатов включена")
		}
	}

	httpServer := &http.Server{
		Addr:         server.Addr(&cfg.Server),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	fmt.Printf("\n🎤 Портал интервью запущен на порту %d\n", cfg.Server.Port)
	fmt.Println("⏳ Ожидание кандидатов...")

	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}

	zl.Info("портал остановлен")
}
