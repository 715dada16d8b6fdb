package directory

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher следит за файлом списка кандидатов и перезагружает его
// при изменении. Ошибка перезагрузки не трогает действующий список.
type Watcher struct {
	watcher *fsnotify.Watcher
	service *Service
	path    string
	logger  *zap.Logger
}

// NewWatcher создает наблюдатель за файлом списка.
func NewWatcher(service *Service, path string, logger *zap.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ошибка создания наблюдателя: %w", err)
	}

	// Следим за директорией: редакторы и выгрузки часто заменяют файл целиком
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("ошибка подписки на %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		watcher: w,
		service: service,
		path:    path,
		logger:  logger,
	}, nil
}

// Run обрабатывает события файловой системы до отмены контекста.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.logger.Info("файл списка кандидатов изменился", zap.String("path", w.path))
			if err := w.service.LoadFile(w.path); err != nil {
				w.logger.Warn("перезагрузка списка не удалась, действует прежний",
					zap.Error(err))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("ошибка наблюдателя файлов", zap.Error(err))
		}
	}
}

// Stop останавливает наблюдатель.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
