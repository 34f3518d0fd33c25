package chat

import (
	"context"
	"fmt"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/metrics"
	"github.com/osse101/ShopBot_Go/internal/repository"
	"github.com/osse101/ShopBot_Go/internal/utils"
	"github.com/osse101/ShopBot_Go/internal/world"
)

// Service defines chat between co-located players
type Service interface {
	Say(ctx context.Context, speakerID int64, text string) (*domain.ChatResult, error)
}

type service struct {
	repo      repository.World
	deliverer Deliverer
}

// NewService creates a new chat service
func NewService(repo repository.World, deliverer Deliverer) Service {
	return &service{
		repo:      repo,
		deliverer: deliverer,
	}
}

// Say sends `{name} said "{text}"` to every other player at the speaker's
// location. Each delivery is independent; a failed one is logged and counted
// but does not fail Say.
func (s *service) Say(ctx context.Context, speakerID int64, text string) (*domain.ChatResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSayCalled, "speaker_id", speakerID)

	text = utils.NormalizeText(text)
	if text == "" {
		return nil, domain.ErrMessageRequired
	}
	if utils.RuneLen(text) > domain.MaxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	speaker, players, err := s.audience(ctx, speakerID)
	if err != nil {
		return nil, err
	}

	metrics.ChatMessages.Inc()
	result := &domain.ChatResult{LocationID: speaker.LocationID}

	// Fan-out happens after the transaction has ended
	for _, p := range players {
		if p.ID == speaker.ID {
			continue
		}
		result.Recipients++

		msg := domain.ChatMessage{
			SpeakerID:         speaker.ID,
			SpeakerName:       speaker.Name,
			LocationID:        speaker.LocationID,
			RecipientID:       p.ID,
			RecipientIdentity: p.Identity(),
			Text:              text,
		}
		if err := s.deliverer.Deliver(ctx, msg); err != nil {
			log.Warn(LogMsgDeliveryFailed, "recipient_id", p.ID, "error", err)
			metrics.ChatDeliveries.WithLabelValues(metrics.ResultFailed).Inc()
			result.Failed++
			continue
		}
		metrics.ChatDeliveries.WithLabelValues(metrics.ResultDelivered).Inc()
		result.Delivered++
	}

	log.Info(LogMsgChatBroadcast, "speaker_id", speaker.ID, "recipients", result.Recipients, "failed", result.Failed)
	return result, nil
}

// audience reads the speaker and the players next to them in one unit of work
func (s *service) audience(ctx context.Context, speakerID int64) (*domain.Entity, []domain.Entity, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	speaker, err := tx.GetEntity(ctx, speakerID)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgGetSpeakerFailed, err)
	}
	players, err := world.WhoIsHereTx(ctx, tx, speaker.LocationID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return speaker, players, nil
}
