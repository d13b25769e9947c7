// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/internal/service"
)

// cacheRefresher periodically re-lists records so the session cache and the
// views built on it stay close to the ledger state between user actions.
type cacheRefresher struct {
	ctx      context.Context
	records  service.RecordService
	interval time.Duration

	logger *logger.Logger
}

func newCacheRefresher(ctx context.Context, records service.RecordService, interval time.Duration, logger *logger.Logger) *cacheRefresher {
	return &cacheRefresher{
		ctx:      ctx,
		records:  records,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the refresh loop in a background goroutine and returns
// immediately. The loop stops when the worker's context is done.
func (c *cacheRefresher) Run() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.ctx.Done():
				c.logger.Info().Msg("cache refresher stopped")
				return
			case <-ticker.C:
				if _, err := c.records.ListRecords(c.ctx); err != nil {
					c.logger.Warn().Err(err).Msg("cache refresh failed")
				}
			}
		}
	}()
}
