package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPRepository keeps OTP sessions in Redis, keyed by email; nothing is
// carried client-side between the login and verify steps. Only the bcrypt
// hash of the code is stored. A separate cooldown key gates resends via its
// TTL.
type OTPRepository struct {
	client *redis.Client
}

func NewOTPRepository(client *redis.Client) *OTPRepository {
	return &OTPRepository{client: client}
}

func (r *OTPRepository) codeKey(email string) string {
	return "otp:login:" + email
}

func (r *OTPRepository) cooldownKey(email string) string {
	return "otp:cooldown:" + email
}

func (r *OTPRepository) SaveCodeHash(ctx context.Context, email, hash string, ttl time.Duration) error {
	return r.client.Set(ctx, r.codeKey(email), hash, ttl).Err()
}

// GetCodeHash returns the stored hash, or "" when no OTP session exists.
func (r *OTPRepository) GetCodeHash(ctx context.Context, email string) (string, error) {
	val, err := r.client.Get(ctx, r.codeKey(email)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *OTPRepository) DeleteCode(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.codeKey(email)).Err()
}

func (r *OTPRepository) SetCooldown(ctx context.Context, email string, d time.Duration) error {
	return r.client.Set(ctx, r.cooldownKey(email), "1", d).Err()
}

// CooldownRemaining returns how long the resend gate stays closed, zero when
// open.
func (r *OTPRepository) CooldownRemaining(ctx context.Context, email string) (time.Duration, error) {
	ttl, err := r.client.TTL(ctx, r.cooldownKey(email)).Result()
	if err != nil {
		return 0, err
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}
