package quote

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// Sink is the external submission collaborator. A real implementation
// would be an email-dispatch or ticketing API.
type Sink interface {
	Submit(ctx context.Context, req Request) (Receipt, error)
}

type Receipt struct {
	ReferenceID string    `json:"referenceId"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// SimulatedSink succeeds unconditionally after a fixed delay. When
// OutboxDir is set it also writes the quote as a spreadsheet there,
// best-effort, to stand in for the dispatched email.
type SimulatedSink struct {
	Delay     time.Duration
	OutboxDir string
}

func (s *SimulatedSink) Submit(ctx context.Context, req Request) (Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	receipt := Receipt{
		ReferenceID: uuid.New().String(),
		SubmittedAt: time.Now().UTC(),
	}

	if s.OutboxDir != "" {
		path, err := writeOutbox(s.OutboxDir, receipt.ReferenceID, req)
		if err != nil {
			log.Printf("quote: outbox export failed: %v", err)
		} else {
			log.Printf("quote: exported %s", path)
		}
	}
	return receipt, nil
}
