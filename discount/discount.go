// Package discount serves the promotional banner and its countdown. The
// countdown is purely read-derived; the banner runs a recompute task
// with an explicit Start/Stop tied to the owning lifetime.
package discount

import (
	"sync"
	"time"

	"github.com/woodendoors/doorshowcase/models"
)

type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// Remaining computes the countdown to expiry at the given instant.
func Remaining(expiry, now time.Time) Countdown {
	left := expiry.Sub(now)
	if left <= 0 {
		return Countdown{Expired: true}
	}
	return Countdown{
		Days:    int(left.Hours()) / 24,
		Hours:   int(left.Hours()) % 24,
		Minutes: int(left.Minutes()) % 60,
		Seconds: int(left.Seconds()) % 60,
	}
}

type Banner struct {
	mu        sync.RWMutex
	discount  models.Discount
	remaining Countdown

	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewBanner(d models.Discount, interval time.Duration) *Banner {
	b := &Banner{discount: d, interval: interval}
	b.refresh(time.Now())
	return b
}

// Start launches the periodic recompute. It is a no-op for a banner
// without an expiry date.
func (b *Banner) Start() {
	if b.discount.ExpiryDate == nil {
		return
	}
	b.mu.Lock()
	if b.stop != nil {
		b.mu.Unlock()
		return
	}
	b.stop = make(chan struct{})
	stop := b.stop
	b.mu.Unlock()

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				b.refresh(now)
			}
		}
	}()
}

func (b *Banner) Stop() {
	b.mu.RLock()
	stop := b.stop
	b.mu.RUnlock()
	if stop == nil {
		return
	}
	b.stopOnce.Do(func() { close(stop) })
}

// Snapshot returns the banner and the most recently computed countdown.
func (b *Banner) Snapshot() (models.Discount, Countdown) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.discount, b.remaining
}

func (b *Banner) refresh(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.discount.ExpiryDate != nil {
		b.remaining = Remaining(*b.discount.ExpiryDate, now)
	}
}
