package world

import (
	"context"
	"fmt"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/inventory"
	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/repository"
)

// Service defines navigation, presence and status queries
type Service interface {
	Move(ctx context.Context, entityID, destinationID int64) error
	WhoIsHere(ctx context.Context, locationID int64) ([]domain.Entity, error)
	DescribeLocation(ctx context.Context, locationID int64) (*domain.LocationDescription, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	Status(ctx context.Context, entityID int64) (*domain.EntityStatus, error)
}

type service struct {
	repo repository.World
	bus  event.Bus
}

// NewService creates a new world service. bus may be nil.
func NewService(repo repository.World, bus event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
	}
}

// Move relocates an entity. Any location is reachable from any other.
func (s *service) Move(ctx context.Context, entityID, destinationID int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgMoveCalled, "entity_id", entityID, "destination_id", destinationID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entity, err := tx.GetEntity(ctx, entityID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetEntityFailed, err)
	}
	if _, err := tx.GetLocation(ctx, destinationID); err != nil {
		return fmt.Errorf(ErrMsgGetLocationFailed, err)
	}
	if err := tx.UpdateEntityLocation(ctx, entityID, destinationID); err != nil {
		return fmt.Errorf(ErrMsgMoveFailed, entityID, destinationID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishBestEffort(ctx, s.bus, event.NewEntityMovedEvent(entityID, entity.LocationID, destinationID), log)

	log.Info(LogMsgEntityMoved, "entity_id", entityID, "from", entity.LocationID, "to", destinationID)
	return nil
}

// WhoIsHere lists the players (never shopkeepers) at a location by id
func (s *service) WhoIsHere(ctx context.Context, locationID int64) ([]domain.Entity, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	players, err := WhoIsHereTx(ctx, tx, locationID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return players, nil
}

// WhoIsHereTx lists players at a location inside an open transaction
func WhoIsHereTx(ctx context.Context, tx repository.WorldTx, locationID int64) ([]domain.Entity, error) {
	if _, err := tx.GetLocation(ctx, locationID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetLocationFailed, err)
	}
	players, err := tx.ListPlayersAtLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPlayersFailed, err)
	}
	return players, nil
}

// DescribeLocation returns the location with its shop listing. An empty
// listing is reported through NothingForSale.
func (s *service) DescribeLocation(ctx context.Context, locationID int64) (*domain.LocationDescription, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	location, err := tx.GetLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLocationFailed, err)
	}
	listings, err := inventory.ListForSaleTx(ctx, tx, locationID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &domain.LocationDescription{
		Location:       *location,
		Listings:       listings,
		NothingForSale: len(listings) == 0,
	}, nil
}

func (s *service) ListLocations(ctx context.Context) ([]domain.Location, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	locations, err := tx.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListLocationsFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return locations, nil
}

// Status aggregates name, money, location and holdings from one snapshot
func (s *service) Status(ctx context.Context, entityID int64) (*domain.EntityStatus, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entity, err := tx.GetEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntityFailed, err)
	}
	location, err := tx.GetLocation(ctx, entity.LocationID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLocationFailed, err)
	}
	holdings, err := inventory.ListHoldingsTx(ctx, tx, entityID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &domain.EntityStatus{
		EntityID:     entity.ID,
		Name:         entity.Name,
		Money:        entity.Money,
		LocationID:   location.ID,
		LocationName: location.Name,
		Holdings:     holdings,
	}, nil
}
