package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/insider-vault/internal/ledger"
	"github.com/MKhiriev/insider-vault/internal/logger"
)

// casAttempts bounds the retry loop of the conditional append. Contention
// on the index is rare (one append per record creation), so a small bound
// is plenty.
const casAttempts = 8

// ErrIndexContention is returned when a conditional append loses the swap
// more times than the retry budget allows.
var ErrIndexContention = errors.New("index contention: conditional append retries exhausted")

// casIndex serializes concurrent appends through the backend's
// compare-and-swap. Lost updates become retries instead of silent drops.
type casIndex struct {
	client ledger.ConditionalClient
	logger *logger.Logger
}

// NewConditional returns an index manager whose AppendID is safe against
// concurrent writers, backed by client's conditional write.
func NewConditional(client ledger.ConditionalClient, logger *logger.Logger) Manager {
	return &casIndex{client: client, logger: logger}
}

func (c *casIndex) ListIDs(ctx context.Context) ([]string, error) {
	return readIDs(ctx, c.client, c.logger)
}

func (c *casIndex) AppendID(ctx context.Context, id string) error {
	for attempt := 0; attempt < casAttempts; attempt++ {
		current, err := c.client.GetData(ctx, Key)
		if err != nil {
			return fmt.Errorf("append id %q: read index key: %w", id, err)
		}

		ids := decodeIDs(current, c.logger)
		payload, err := json.Marshal(append(ids, id))
		if err != nil {
			return fmt.Errorf("encode index: %w", err)
		}

		expect := current
		if len(current) == 0 {
			expect = nil
		}

		swapped, err := c.client.CompareAndSwap(ctx, Key, expect, payload)
		if err != nil {
			return fmt.Errorf("write index: %w", err)
		}
		if swapped {
			return nil
		}

		c.logger.Debug().Str("id", id).Int("attempt", attempt+1).
			Msg("index append lost the swap, retrying")
	}
	return fmt.Errorf("append id %q: %w", id, ErrIndexContention)
}

func decodeIDs(raw []byte, log *logger.Logger) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("malformed index content, treating as empty")
		return []string{}
	}
	return ids
}
