package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"goal-quantifier/domain"
)

type RedisDocumentStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration // 0 = sin expiración
}

func NewRedisDocumentStore(opts RedisOptions) *RedisDocumentStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return NewRedisDocumentStoreWithClient(rdb, opts.KeyPrefix, opts.TTL)
}

func NewRedisDocumentStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisDocumentStore {
	return &RedisDocumentStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *RedisDocumentStore) key(id string) string {
	return r.keyPrefix + id
}

func (r *RedisDocumentStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisDocumentStore) Close() error {
	return r.client.Close()
}

func (r *RedisDocumentStore) Get(ctx context.Context, id string) (domain.Document, error) {
	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", id, err)
	}

	doc, err := domain.ParseDocument(val)
	if err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", id, err)
	}
	return doc, nil
}

func (r *RedisDocumentStore) Put(ctx context.Context, id string, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", id, err)
	}
	if err := r.client.Set(ctx, r.key(id), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", id, err)
	}
	return nil
}
