// Package watch monitors a directory for new SRT transcripts and produces an
// arc manifest for each as it appears.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ShaikhWarsi/Creator-Catalyst/internal/pipeline"
)

type Watcher struct {
	cfg     pipeline.Config
	logf    func(format string, args ...any)
	watcher *fsnotify.Watcher

	semaphore chan struct{}
	wg        sync.WaitGroup
}

func New(cfg pipeline.Config, inputDir string, logf func(format string, args ...any)) (*Watcher, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(inputDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", inputDir, err)
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Watcher{
		cfg:       cfg,
		logf:      logf,
		watcher:   fw,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}

// Start blocks, processing new .srt files until the context is cancelled.
// One scorer instance is shared across files so API-key rotation state and
// HTTP clients are reused.
func (w *Watcher) Start(ctx context.Context) error {
	scorer := pipeline.NewScorer(w.cfg)
	w.logf("watching for new transcripts (max concurrent: %d)", cap(w.semaphore))

	for {
		select {
		case <-ctx.Done():
			w.logf("waiting for in-flight transcripts...")
			w.wg.Wait()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isTranscript(event.Name) {
				continue
			}
			w.logf("new transcript detected: %s", event.Name)

			// Small delay so the file is fully written before reading.
			time.Sleep(500 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := pipeline.ProcessFile(ctx, w.cfg, scorer, path, w.logf); err != nil {
						w.logf("failed to process %s: %v", path, err)
					}
				}(event.Name)
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logf("watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func isTranscript(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".srt"
}
