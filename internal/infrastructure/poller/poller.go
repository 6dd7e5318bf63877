package poller

import (
	"context"
	"sync"
	"time"

	"vendora/pkg/logger"
)

// TickFunc performs one fetch. Errors are logged and swallowed: a failed
// tick never stops the loop, the next tick retries on its own.
type TickFunc func(ctx context.Context) error

type loop struct {
	stop chan struct{}
	done chan struct{}
}

// Poller runs keyed interval loops. Each key owns at most one loop: starting
// a key that is already running replaces the previous loop, so a stale timer
// can never survive a re-subscribe. Ticks for a key run sequentially on one
// goroutine; a slow fetch delays the next tick instead of overlapping it.
type Poller struct {
	mu    sync.Mutex
	loops map[string]*loop
}

func New() *Poller {
	return &Poller{
		loops: make(map[string]*loop),
	}
}

// Start begins polling for key: one immediate tick, then one tick per
// interval until Stop. Any loop already registered under key is stopped
// first.
func (p *Poller) Start(key string, interval time.Duration, tick TickFunc) {
	p.Stop(key)

	l := &loop{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	p.mu.Lock()
	p.loops[key] = l
	p.mu.Unlock()

	go p.run(key, interval, tick, l)
}

func (p *Poller) run(key string, interval time.Duration, tick TickFunc, l *loop) {
	defer close(l.done)

	ctx := context.Background()
	p.tick(ctx, key, tick)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			p.tick(ctx, key, tick)
		}
	}
}

func (p *Poller) tick(ctx context.Context, key string, tick TickFunc) {
	if err := tick(ctx); err != nil {
		logger.Warn("poll %s: tick failed: %v", key, err)
	}
}

// Stop halts the loop for key, waiting for any in-flight tick to finish.
// Stopping a key that is not running is a no-op.
func (p *Poller) Stop(key string) {
	p.mu.Lock()
	l, ok := p.loops[key]
	if ok {
		delete(p.loops, key)
	}
	p.mu.Unlock()

	if ok {
		close(l.stop)
		<-l.done
	}
}

// StopAll halts every running loop. Called on teardown.
func (p *Poller) StopAll() {
	p.mu.Lock()
	loops := p.loops
	p.loops = make(map[string]*loop)
	p.mu.Unlock()

	for _, l := range loops {
		close(l.stop)
		<-l.done
	}
}

// Active reports whether a loop is currently registered for key.
func (p *Poller) Active(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.loops[key]
	return ok
}
