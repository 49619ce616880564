package analytics

import (
	"context"
	"errors"
	"time"

	"summoners-school/client"

	"github.com/go-redis/redis/v8"
	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api/write"
	"go.uber.org/zap"
)

// Counter is the part of the redis client used to count visits
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// PointWriter is the part of the influxdb write api used to store visit events
type PointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// Visit describes one read of a course or guide
type Visit struct {
	Domain    string // course, guide
	ObjectID  string
	Client    string // client ip
	RequestID string
}

func (v Visit) profileID() string {
	return v.Domain + "_" + v.ObjectID
}

// Tracker counts visits per resource (redis) and keeps the single
// events for later analysis (influxdb). A nil Tracker tracks nothing.
type Tracker struct {
	counter  Counter
	writer   PointWriter
	requests *client.Registry
	logger   *zap.Logger
}

// NewTracker wires the stores; writer and requests may be nil
func NewTracker(counter Counter, writer PointWriter, requests *client.Registry, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		counter:  counter,
		writer:   writer,
		requests: requests,
		logger:   logger,
	}
}

// Enabled reports whether visits are counted at all
func (t *Tracker) Enabled() bool {
	return t != nil && t.counter != nil
}

func visitKey(domain, objectID string) string {
	return "visits:" + domain + ":" + objectID
}

// SaveVisitor stores event data in the analytics stores.
// Failures are logged, the visited resource is served anyway.
func (t *Tracker) SaveVisitor(ctx context.Context, v Visit) {
	if !t.Enabled() {
		return
	}

	// page refresh
	if t.requests != nil && !t.requests.Continue(v.Client, v.profileID()) {
		return
	}

	if err := t.counter.Incr(ctx, visitKey(v.Domain, v.ObjectID)).Err(); err != nil {
		t.logger.Warn("count visit", zap.String("profileId", v.profileID()), zap.Error(err))
	}

	if t.writer == nil {
		return
	}

	p := influxdb2.NewPoint(
		"visit",
		map[string]string{"profileId": v.profileID()},
		map[string]interface{}{"requestId": v.RequestID},
		time.Now())

	if err := t.writer.WritePoint(ctx, p); err != nil {
		t.logger.Warn("write visit", zap.String("profileId", v.profileID()), zap.Error(err))
	}
}

// GetVisits returns how often a resource has been visited
func (t *Tracker) GetVisits(ctx context.Context, domain string, objectID string) (int64, error) {
	if !t.Enabled() {
		return 0, nil
	}

	n, err := t.counter.Get(ctx, visitKey(domain, objectID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
