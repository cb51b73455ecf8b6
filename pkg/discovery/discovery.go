// Package discovery implements a Redis-backed service registry.
//
// Each service instance registers its advertised address under a TTL-bounded
// key and renews it with a background heartbeat; an instance that stops
// heartbeating falls out of the registry when its key expires. Resolution
// picks uniformly at random among the live instances of a service — no
// weighting, no sticky routing.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/lendhub/pkg/logger"
)

// Logical service names. These are fixed, not configurable per request.
const (
	ServiceBooks    = "books"
	ServiceReaders  = "readers"
	ServiceIssuance = "issuance"
)

const keyPrefix = "discovery:"

// ErrNoInstances indicates no live instance is registered for a service.
var ErrNoInstances = errors.New("no live instances")

// Instance is one registered server instance of a logical service.
type Instance struct {
	ID   string // unique instance id, e.g. "issuance-host1-4242"
	Addr string // host:port reachable by peer services
}

// Resolver resolves a logical service name to one live instance.
// The orchestration code depends only on this interface so tests can supply
// canned addresses or failures.
type Resolver interface {
	Resolve(ctx context.Context, service string) (Instance, error)
}

// Registry is the Redis-backed implementation of Resolver plus the
// registration side used by each service at startup.
type Registry struct {
	rdb *redis.Client
	ttl time.Duration
	log logger.Logger
}

// NewRegistry returns a Registry using rdb. ttl bounds how long an instance
// stays resolvable after its last heartbeat.
func NewRegistry(rdb *redis.Client, ttl time.Duration, log logger.Logger) *Registry {
	return &Registry{rdb: rdb, ttl: ttl, log: log}
}

func instanceKey(service, id string) string {
	return keyPrefix + service + ":" + id
}

// Register announces one instance of service at addr. The entry expires after
// the registry TTL unless renewed via Heartbeat.
func (r *Registry) Register(ctx context.Context, service, id, addr string) error {
	if err := r.rdb.Set(ctx, instanceKey(service, id), addr, r.ttl).Err(); err != nil {
		return fmt.Errorf("discovery: register %s/%s: %w", service, id, err)
	}
	return nil
}

// Deregister removes one instance of service from the registry.
func (r *Registry) Deregister(ctx context.Context, service, id string) error {
	if err := r.rdb.Del(ctx, instanceKey(service, id)).Err(); err != nil {
		return fmt.Errorf("discovery: deregister %s/%s: %w", service, id, err)
	}
	return nil
}

// Heartbeat renews the registration of one instance at ttl/3 intervals until
// ctx is cancelled. Run it in a goroutine after a successful Register.
// Renewal failures are logged and retried on the next tick.
func (r *Registry) Heartbeat(ctx context.Context, service, id, addr string) {
	interval := r.ttl / 3
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Register(ctx, service, id, addr); err != nil {
				r.log.WarnContext(ctx, "discovery: heartbeat failed",
					"service", service, "instance", id, "error", err)
			}
		}
	}
}

// Resolve returns one live instance of service, chosen uniformly at random.
// Returns ErrNoInstances when nothing is registered.
func (r *Registry) Resolve(ctx context.Context, service string) (Instance, error) {
	instances, err := r.Instances(ctx, service)
	if err != nil {
		return Instance{}, err
	}
	return instances[rand.IntN(len(instances))], nil
}

// Instances lists all live instances of service.
func (r *Registry) Instances(ctx context.Context, service string) ([]Instance, error) {
	pattern := keyPrefix + service + ":*"

	var keys []string
	iter := r.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("discovery: scan %s: %w", service, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w for service %q", ErrNoInstances, service)
	}

	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("discovery: mget %s: %w", service, err)
	}

	instances := make([]Instance, 0, len(keys))
	for i, v := range vals {
		addr, ok := v.(string)
		if !ok || addr == "" {
			continue // expired between SCAN and MGET
		}
		id := strings.TrimPrefix(keys[i], keyPrefix+service+":")
		instances = append(instances, Instance{ID: id, Addr: addr})
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("%w for service %q", ErrNoInstances, service)
	}
	return instances, nil
}
