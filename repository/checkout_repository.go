package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/printmate/storefront-backend/models"
	"github.com/redis/go-redis/v9"
)

// CheckoutRepository stores wizard sessions as JSON values with a TTL, so an
// abandoned checkout simply expires.
type CheckoutRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCheckoutRepository(client *redis.Client, ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *CheckoutRepository) getKey(id string) string {
	return fmt.Sprintf("checkout:session:%s", id)
}

func (r *CheckoutRepository) GetSession(ctx context.Context, id string) (*models.CheckoutSession, error) {
	data, err := r.client.Get(ctx, r.getKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *CheckoutRepository) SaveSession(ctx context.Context, session *models.CheckoutSession) error {
	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.getKey(session.ID), data, r.ttl).Err()
}
