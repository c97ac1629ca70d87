package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/dayanaadylkhanova/seller-forecast/internal/metrics"
	"go.uber.org/zap"
)

type snapKey struct {
	seller    string
	timeframe entity.Timeframe
	day       int64 // unix days since epoch
}

type shard struct {
	mu   sync.Mutex
	data map[snapKey]entity.Snapshot
}

// SnapshotRecorder buffers daily forecast snapshots in memory and flushes
// them to the store periodically. Repeated records for the same seller,
// timeframe and day collapse into one row that keeps the latest values and
// counts the requests.
type SnapshotRecorder struct {
	log        *zap.Logger
	writer     SnapshotWriter
	shards     []shard
	flushEvery time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
	flushMu    sync.Mutex // one flush in flight
}

func NewSnapshotRecorder(log *zap.Logger, w SnapshotWriter, shardCount int, flushEvery time.Duration) *SnapshotRecorder {
	if shardCount <= 0 {
		shardCount = 1
	}
	if flushEvery <= 0 {
		flushEvery = time.Second
	}
	shards := make([]shard, shardCount)
	for i := range shards {
		shards[i] = shard{data: make(map[snapKey]entity.Snapshot, 64)}
	}
	return &SnapshotRecorder{log: log, writer: w, shards: shards, flushEvery: flushEvery, stopCh: make(chan struct{})}
}

func dayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r *SnapshotRecorder) shardIndex(k snapKey) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(k.seller))
	x := uint64(h.Sum32())*1315423911 ^ uint64(k.day) ^ uint64(k.timeframe)
	return int(x % uint64(len(r.shards)))
}

// Record merges s into the pending batch. s.Requests is ignored; each call
// counts as one request.
func (r *SnapshotRecorder) Record(s entity.Snapshot) {
	if s.ComputedAt.IsZero() {
		s.ComputedAt = time.Now()
	}
	s.ComputedAt = s.ComputedAt.UTC()
	s.Day = dayUTC(s.ComputedAt)
	k := snapKey{seller: s.SellerID, timeframe: s.Timeframe, day: s.Day.Unix() / 86400}

	sh := &r.shards[r.shardIndex(k)]
	sh.mu.Lock()
	prev, ok := sh.data[k]
	s.Requests = 1
	if ok {
		s.Requests += prev.Requests
		if prev.ComputedAt.After(s.ComputedAt) {
			reqs := s.Requests
			s = prev
			s.Requests = reqs
		}
	}
	sh.data[k] = s
	sh.mu.Unlock()
}

// snapshot copies the pending rows under the shard locks without clearing them.
func (r *SnapshotRecorder) snapshot() ([]map[snapKey]entity.Snapshot, []entity.Snapshot) {
	tmp := make([]map[snapKey]entity.Snapshot, len(r.shards))
	var batch []entity.Snapshot
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.Lock()
		if len(sh.data) > 0 {
			m := make(map[snapKey]entity.Snapshot, len(sh.data))
			for k, v := range sh.data {
				m[k] = v
				batch = append(batch, v)
			}
			tmp[i] = m
		}
		sh.mu.Unlock()
	}
	return tmp, batch
}

// release drops the flushed rows. Requests recorded after the copy was
// taken stay pending for the next flush.
func (r *SnapshotRecorder) release(flushed []map[snapKey]entity.Snapshot) {
	for i := range r.shards {
		if flushed[i] == nil {
			continue
		}
		sh := &r.shards[i]
		sh.mu.Lock()
		for k, sent := range flushed[i] {
			cur, ok := sh.data[k]
			if !ok {
				continue
			}
			if cur.Requests <= sent.Requests {
				delete(sh.data, k)
				continue
			}
			cur.Requests -= sent.Requests
			sh.data[k] = cur
		}
		sh.mu.Unlock()
	}
}

func (r *SnapshotRecorder) flush(ctx context.Context) error {
	r.flushMu.Lock()
	defer r.flushMu.Unlock()

	tmp, batch := r.snapshot()
	if len(batch) == 0 {
		return nil
	}
	metrics.SnapshotBatchSize.Observe(float64(len(batch)))
	if err := r.writer.UpsertSnapshots(ctx, batch); err != nil {
		metrics.SnapshotFlushes.WithLabelValues("error").Inc()
		return err
	}
	metrics.SnapshotFlushes.WithLabelValues("ok").Inc()
	r.release(tmp)
	return nil
}

func (r *SnapshotRecorder) Run(ctx context.Context) {
	t := time.NewTicker(r.flushEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-t.C:
			if err := r.flush(ctx); err != nil {
				r.log.Warn("snapshot flush failed", zap.Error(err))
			}
		}
	}
}

// Stop ends Run and makes a best-effort final flush.
func (r *SnapshotRecorder) Stop(ctx context.Context) {
	r.stopOnce.Do(func() { close(r.stopCh) })
	if err := r.flush(ctx); err != nil {
		r.log.Warn("final snapshot flush failed", zap.Error(err))
	}
}
