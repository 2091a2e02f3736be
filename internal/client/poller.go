package client

import (
	"context"
	"sync"
	"time"

	"github.com/GeetAtGit/ReportVerse/internal/config"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/helpers"
)

// Poller defaults; PollerFromConfig overrides both from the client config
// section.
const (
	DefaultPollInterval     = time.Hour
	DefaultPendingThreshold = 72 * time.Hour
)

// NotifyFunc receives the count of pending issues when the poller fires
type NotifyFunc func(pendingCount int)

// Poller periodically lists a mentor's issues and fires one consolidated
// notification when issues have sat in Open or Under Review past the
// pending threshold. After firing once it keeps polling but stays silent
// for the rest of the session.
type Poller struct {
	client           *Client
	interval         time.Duration
	pendingThreshold time.Duration
	notify           NotifyFunc
	now              func() time.Time

	mu       sync.Mutex
	notified bool
}

// NewPoller creates a Poller for a mentor session. Zero durations fall back
// to the defaults.
func NewPoller(client *Client, interval, pendingThreshold time.Duration, notify NotifyFunc) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if pendingThreshold <= 0 {
		pendingThreshold = DefaultPendingThreshold
	}
	return &Poller{
		client:           client,
		interval:         interval,
		pendingThreshold: pendingThreshold,
		notify:           notify,
		now:              time.Now,
	}
}

// PollerFromConfig creates a Poller with the interval and pending threshold
// from the client config section. Unparseable values fall back to the
// defaults.
func PollerFromConfig(client *Client, cfg *config.Config, notify NotifyFunc) *Poller {
	return NewPoller(
		client,
		helpers.ParseDuration(cfg.Client.PollInterval, DefaultPollInterval),
		helpers.ParseDuration(cfg.Client.PendingThreshold, DefaultPendingThreshold),
		notify,
	)
}

// Start runs the poll loop until ctx is cancelled
func (p *Poller) Start(ctx context.Context) {
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll performs one tick. List failures are skipped; the next tick retries.
func (p *Poller) poll(ctx context.Context) {
	issues, err := p.client.ListIssues(ctx)
	if err != nil {
		return
	}

	cutoff := p.now().Add(-p.pendingThreshold)
	pending := 0
	for _, issue := range issues {
		if issue.Status.Terminal() {
			continue
		}
		if issue.CreatedAt.Before(cutoff) {
			pending++
		}
	}

	if pending == 0 {
		return
	}

	p.mu.Lock()
	alreadyNotified := p.notified
	p.notified = true
	p.mu.Unlock()

	if !alreadyNotified && p.notify != nil {
		p.notify(pending)
	}
}
