package workers

import (
	"context"

	"github.com/MKhiriev/insider-vault/internal/config"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers from cfg.
// Workers whose configuration is zero-valued are left out.
func NewWorkers(ctx context.Context, records service.RecordService, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.RefreshInterval > 0 {
		w.workers = append(w.workers, newCacheRefresher(ctx, records, cfg.RefreshInterval, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
