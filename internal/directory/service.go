package directory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/repository"
	"github.com/osse101/ShopBot_Go/internal/utils"
)

// Service defines the entity directory: registration and identity lookup
type Service interface {
	Register(ctx context.Context, externalIdentity, displayName string) (*domain.Entity, error)
	Resolve(ctx context.Context, externalIdentity string) (*domain.Entity, error)
	Rename(ctx context.Context, entityID int64, newName string) error
	GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error)
}

type service struct {
	repo repository.Directory
	bus  event.Bus
}

// NewService creates a new directory service. bus may be nil.
func NewService(repo repository.Directory, bus event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
	}
}

// normalizeName trims and NFC-normalizes a display name and checks its length
func normalizeName(name string) (string, error) {
	name = utils.NormalizeText(name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if utils.RuneLen(name) > domain.MaxNameLength {
		return "", domain.ErrNameTooLong
	}
	return name, nil
}

// Register creates a player at the unique start location with no money and
// an empty backpack
func (s *service) Register(ctx context.Context, externalIdentity, displayName string) (*domain.Entity, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "external_identity", externalIdentity, "name", displayName)

	name, err := normalizeName(displayName)
	if err != nil {
		return nil, err
	}
	identity := utils.NormalizeText(externalIdentity)
	if identity == "" {
		return nil, domain.ErrIdentityRequired
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	starts, err := tx.ListStartLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListStartLocationsFailed, err)
	}
	switch len(starts) {
	case 0:
		log.Warn(LogMsgNoStartLocation, "count", 0)
		return nil, domain.ErrNoStartLocation
	case 1:
	default:
		log.Warn(LogMsgNoStartLocation, "count", len(starts))
		return nil, domain.ErrMultipleStartLocations
	}

	entity, err := tx.InsertEntity(ctx, domain.NewEntity{
		ExternalIdentity: &identity,
		Name:             name,
		LocationID:       starts[0].ID,
		Money:            decimal.Zero,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertEntityFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishBestEffort(ctx, s.bus, event.NewEntityRegisteredEvent(entity), log)

	log.Info(LogMsgEntityRegistered, "entity_id", entity.ID, "location_id", entity.LocationID)
	return entity, nil
}

// Resolve maps an external identity to its entity
func (s *service) Resolve(ctx context.Context, externalIdentity string) (*domain.Entity, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgResolveCalled, "external_identity", externalIdentity)

	identity := utils.NormalizeText(externalIdentity)
	if identity == "" {
		return nil, domain.ErrIdentityRequired
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entity, err := tx.GetEntityByIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return entity, nil
}

// Rename overwrites the display name. Names are not unique.
func (s *service) Rename(ctx context.Context, entityID int64, newName string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRenameCalled, "entity_id", entityID, "name", newName)

	name, err := normalizeName(newName)
	if err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.UpdateEntityName(ctx, entityID, name); err != nil {
		return fmt.Errorf(ErrMsgRenameFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgEntityRenamed, "entity_id", entityID)
	return nil
}

func (s *service) GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entity, err := tx.GetEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntityFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return entity, nil
}
