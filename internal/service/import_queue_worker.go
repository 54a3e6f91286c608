package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Farhaan96/CollisionOS-sub009/internal/port"
)

// ImportQueueConfig holds settings for the import queue worker.
type ImportQueueConfig struct {
	PollInterval time.Duration
	Concurrency  int
}

// ImportQueueWorker polls for pending imports and dispatches them for
// parsing. Each dispatched import gets its own parser instance inside
// ProcessImport, so concurrent parses share no state.
type ImportQueueWorker struct {
	repo      port.EstimateRepository
	importSvc ImportService
	cfg       ImportQueueConfig
	wg        sync.WaitGroup
}

// NewImportQueueWorker creates a new ImportQueueWorker.
func NewImportQueueWorker(repo port.EstimateRepository, importSvc ImportService, cfg ImportQueueConfig) *ImportQueueWorker {
	return &ImportQueueWorker{
		repo:      repo,
		importSvc: importSvc,
		cfg:       cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight imports have finished.
func (w *ImportQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("importQueueWorker: started (poll=%s, concurrency=%d)", w.cfg.PollInterval, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("importQueueWorker: shutting down, waiting for in-flight imports...")
			w.wg.Wait()
			log.Printf("importQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			imports, err := w.repo.ClaimPending(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Printf("importQueueWorker: ClaimPending error: %v", err)
				continue
			}

			for i := range imports {
				imp := imports[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Fresh context independent of the poll context so
					// in-flight imports complete even during shutdown.
					parseCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
					defer cancel()

					log.Printf("importQueueWorker: dispatching import %s (%s)", imp.ID, imp.FileName)
					w.importSvc.ProcessImport(parseCtx, &imp)
				}()
			}
		}
	}
}
