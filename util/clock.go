package util

import (
	"sync/atomic"
	"time"
)

// Clock reports wall-clock time in whole unix seconds.
type Clock interface {
	NowSeconds() int64
}

type SystemClock struct{}

func (SystemClock) NowSeconds() int64 {
	return time.Now().Unix()
}

// ManualClock only moves when told to. Safe for concurrent use.
type ManualClock struct {
	now int64	// atomic
}

func NewManualClock(now int64) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) NowSeconds() int64 {
	return atomic.LoadInt64(&c.now)
}

func (c *ManualClock) Set(now int64) {
	atomic.StoreInt64(&c.now, now)
}

func (c *ManualClock) Advance(secs int64) int64 {
	return atomic.AddInt64(&c.now, secs)
}
