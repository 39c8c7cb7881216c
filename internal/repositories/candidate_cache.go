package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"transaction-reports/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// cachedRecord is the redis encoding of a TransactionRecord. It keeps the
// storage-only fields the API encoding omits.
type cachedRecord struct {
	ID              uint            `json:"id"`
	ClientID        int64           `json:"client_id"`
	MerchantID      int64           `json:"merchant_id"`
	TerminalID      int64           `json:"terminal_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	VoucherNumber   *string         `json:"voucher_number,omitempty"`
	ExpiredDate     time.Time       `json:"expired_date"`
	Description     *string         `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	MerchantName    *string         `json:"merchant_name,omitempty"`
}

// RedisCandidateCache caches candidate sets in redis
type RedisCandidateCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCandidateCache creates a cache storing keys under prefix
func NewRedisCandidateCache(client *redis.Client, prefix string) CandidateCacheInterface {
	if prefix == "" {
		prefix = "transaction_candidates"
	}
	return &RedisCandidateCache{client: client, prefix: prefix}
}

func (c *RedisCandidateCache) key(clientID int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, clientID)
}

func (c *RedisCandidateCache) Get(ctx context.Context, clientID int64) ([]models.TransactionRecord, bool, error) {
	payload, err := c.client.Get(ctx, c.key(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached candidates: %w", err)
	}

	var cached []cachedRecord
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached candidates: %w", err)
	}

	records := make([]models.TransactionRecord, len(cached))
	for i, rec := range cached {
		records[i] = models.TransactionRecord{
			ID:              rec.ID,
			ClientID:        rec.ClientID,
			MerchantID:      rec.MerchantID,
			TerminalID:      rec.TerminalID,
			TransactionDate: rec.TransactionDate,
			VoucherNumber:   rec.VoucherNumber,
			ExpiredDate:     rec.ExpiredDate,
			Description:     rec.Description,
			Amount:          rec.Amount,
			MerchantName:    rec.MerchantName,
		}
	}
	return records, true, nil
}

func (c *RedisCandidateCache) Set(ctx context.Context, clientID int64, records []models.TransactionRecord, ttl time.Duration) error {
	cached := make([]cachedRecord, len(records))
	for i, rec := range records {
		cached[i] = cachedRecord{
			ID:              rec.ID,
			ClientID:        rec.ClientID,
			MerchantID:      rec.MerchantID,
			TerminalID:      rec.TerminalID,
			TransactionDate: rec.TransactionDate,
			VoucherNumber:   rec.VoucherNumber,
			ExpiredDate:     rec.ExpiredDate,
			Description:     rec.Description,
			Amount:          rec.Amount,
			MerchantName:    rec.MerchantName,
		}
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}

	if err := c.client.Set(ctx, c.key(clientID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache candidates: %w", err)
	}
	return nil
}

func (c *RedisCandidateCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
