// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/insider-vault/internal/config"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

// countingRecordService counts ListRecords calls; every other method is
// unused by the workers under test.
type countingRecordService struct {
	listCalls atomic.Int64
}

func (c *countingRecordService) ListRecords(context.Context) ([]models.Record, error) {
	c.listCalls.Add(1)
	return nil, nil
}

func (c *countingRecordService) SubmitRecord(context.Context, models.SubmitRequest) (models.Record, error) {
	return models.Record{}, nil
}

func (c *countingRecordService) SearchRecords(context.Context, models.SearchQuery) ([]models.Record, error) {
	return nil, nil
}

func (c *countingRecordService) Stats(context.Context) (models.Stats, error) {
	return models.Stats{}, nil
}

func (c *countingRecordService) VerifyRecord(context.Context, string, string) ([]models.Record, error) {
	return nil, nil
}

func (c *countingRecordService) RejectRecord(context.Context, string, string) ([]models.Record, error) {
	return nil, nil
}

func (c *countingRecordService) DecryptRecord(context.Context, string) (float64, error) {
	return 0, nil
}

func (c *countingRecordService) History(context.Context) []string { return nil }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run()

	assert.Equal(t, 1, w1.runCount)
	assert.Equal(t, 1, w2.runCount)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// must not panic when no workers are configured
	ws.Run()
}

func TestNewWorkers_ZeroIntervalDisablesRefresher(t *testing.T) {
	ws := NewWorkers(context.Background(), &countingRecordService{}, config.Workers{}, logger.Nop())

	assert.Empty(t, ws.workers)
}

func TestCacheRefresher_RefreshesUntilStopped(t *testing.T) {
	records := &countingRecordService{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ws := NewWorkers(ctx, records, config.Workers{RefreshInterval: 5 * time.Millisecond}, logger.Nop())
	require.Len(t, ws.workers, 1)
	ws.Run()

	require.Eventually(t, func() bool {
		return records.listCalls.Load() >= 2
	}, time.Second, time.Millisecond, "refresher must tick repeatedly")

	cancel()
	time.Sleep(20 * time.Millisecond)
	settled := records.listCalls.Load()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, settled, records.listCalls.Load(), "refresher must stop after cancellation")
}
