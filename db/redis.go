// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/idconsole/config"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis(cfg config.RedisConfiguration) error {
	key := []byte(cfg.EncryptionKey)
	if len(key) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	encryptionKey = key
	logger.Info("Successfully connected to Redis", zap.String("addr", cfg.Addr))
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// Enabled reports whether InitRedis succeeded.
func Enabled() bool {
	return RedisClient != nil
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// StoreSecret encrypts value and stores it under secret:{name} for ttl.
func StoreSecret(ctx context.Context, name string, value []byte, ttl time.Duration) error {
	encrypted, err := encrypt(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt secret: %w", err)
	}

	key := fmt.Sprintf("secret:%s", name)
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encrypted), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache secret: %w", err)
	}

	logger.Debug("Secret cached successfully", zap.String("name", name), zap.Duration("ttl", ttl))
	return nil
}

// LoadSecret returns the decrypted value stored by StoreSecret, or nil when
// nothing is cached.
func LoadSecret(ctx context.Context, name string) ([]byte, error) {
	key := fmt.Sprintf("secret:%s", name)
	encoded, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Secret not found in cache", zap.String("name", name))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get secret from cache: %w", err)
	}

	encrypted, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret: %w", err)
	}

	value, err := decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt secret: %w", err)
	}
	return value, nil
}

func DeleteSecret(ctx context.Context, name string) error {
	key := fmt.Sprintf("secret:%s", name)
	if err := RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete secret from cache: %w", err)
	}
	logger.Debug("Secret deleted from cache", zap.String("name", name))
	return nil
}

// RateLimit records one hit for key in a sliding window of length per and
// reports whether the window holds at most limit hits.
func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
