package cache

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo defaults used when the URL names no database.
const (
	DefaultMongoDatabase   = "fingerbox"
	DefaultMongoCollection = "cache"
)

// Open returns the cache described by target:
//
//	""  or "none"                  caching disabled
//	redis://host:6379/0            RedisCache (rediss:// for TLS)
//	mongodb://host/db              MongoCache in db.cache (mongodb+srv:// too)
//	file:///var/cache/fingerbox    FileCache
//	/var/cache/fingerbox           FileCache
//
// Remote backends are pinged before Open returns; failed pings are retried
// with backoff.
func Open(ctx context.Context, target string) (Cache, error) {
	switch {
	case target == "" || target == "none":
		return NewNullCache(), nil
	case strings.HasPrefix(target, "redis://"), strings.HasPrefix(target, "rediss://"):
		return openRedis(ctx, target)
	case strings.HasPrefix(target, "mongodb://"), strings.HasPrefix(target, "mongodb+srv://"):
		return openMongo(ctx, target)
	case strings.HasPrefix(target, "file://"):
		u, err := url.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("parse cache url: %w", err)
		}
		return openFile(u.Path)
	case strings.Contains(target, "://"):
		return nil, fmt.Errorf("unsupported cache url %q", target)
	default:
		return openFile(target)
	}
}

func openFile(dir string) (Cache, error) {
	c, err := NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func openRedis(ctx context.Context, target string) (Cache, error) {
	opts, err := redis.ParseURL(target)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	err = RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return Retryable(fmt.Errorf("%w: ping redis: %v", ErrNetwork, err))
		}
		return nil
	})
	if err != nil {
		client.Close()
		return nil, err
	}
	return NewRedisCache(client), nil
}

func openMongo(ctx context.Context, target string) (Cache, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(target))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	err = RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx, nil); err != nil {
			return Retryable(fmt.Errorf("%w: ping mongodb: %v", ErrNetwork, err))
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := DefaultMongoDatabase
	if u, err := url.Parse(target); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			db = name
		}
	}
	c, err := NewMongoCache(ctx, client.Database(db).Collection(DefaultMongoCollection))
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("prepare mongodb cache: %w", err)
	}
	c.owned = true
	return c, nil
}
