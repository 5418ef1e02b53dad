package application

import (
	"context"

	"go.uber.org/zap"

	"messagelog/internal/domain"
	"messagelog/internal/observability"
)

type MirrorStatus int

const (
	MirrorOK MirrorStatus = iota
	MirrorDegraded
)

// MirrorOutcome reports whether the cache mirror kept up with a write.
// A degraded outcome never fails the submission; the message is already
// durably stored by the time the mirror is written.
type MirrorOutcome struct {
	Status MirrorStatus
	Reason error
}

func (o MirrorOutcome) Degraded() bool { return o.Status == MirrorDegraded }

// SubmitMessage validates and durably stores content, then mirrors the
// result into the cache. Ordering invariant: the store is always written
// first, so the cache can never reference a message that does not
// durably exist. A store failure aborts before any cache write.
func (s *Service) SubmitMessage(ctx context.Context, content string) (*domain.Message, MirrorOutcome, error) {
	if content == "" {
		return nil, MirrorOutcome{}, domain.ErrEmptyContent
	}

	msg, err := s.store.Insert(ctx, content)
	if err != nil {
		return nil, MirrorOutcome{}, err
	}

	observability.MessagesSubmitted.Inc()

	return msg, s.mirror(ctx, msg), nil
}

func (s *Service) mirror(ctx context.Context, msg *domain.Message) MirrorOutcome {
	if _, err := s.cache.IncrementCount(ctx); err != nil {
		return s.degrade(msg, err)
	}
	if err := s.cache.PushRecent(ctx, msg); err != nil {
		return s.degrade(msg, err)
	}
	return MirrorOutcome{Status: MirrorOK}
}

func (s *Service) degrade(msg *domain.Message, err error) MirrorOutcome {
	observability.CacheMirrorFailures.Inc()
	s.log.Warn("cache mirror failed",
		zap.Int64("message_id", msg.ID),
		zap.Error(err),
	)
	return MirrorOutcome{Status: MirrorDegraded, Reason: err}
}
