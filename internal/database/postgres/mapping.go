package postgres

import (
	"github.com/osse101/ShopBot_Go/internal/database/generated"
	"github.com/osse101/ShopBot_Go/internal/domain"
)

// Row shapes from sqlc stay inside this package. Everything leaving it is a
// domain record built by one of these functions.

func mapLocation(row generated.Location) domain.Location {
	return domain.Location{
		ID:      row.LocationID,
		Name:    row.Name,
		IsStart: row.IsStart,
	}
}

func mapLocations(rows []generated.Location) []domain.Location {
	locations := make([]domain.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, mapLocation(row))
	}
	return locations
}

func mapItem(row generated.Item) domain.Item {
	return domain.Item{
		ID:          row.ItemID,
		Name:        row.Name,
		Description: row.Description,
	}
}

func mapEntity(row generated.Entity) (*domain.Entity, error) {
	money, err := numericToDecimal(row.Money)
	if err != nil {
		return nil, err
	}
	return &domain.Entity{
		ID:               row.EntityID,
		ExternalIdentity: textToPtr(row.ExternalIdentity),
		Name:             row.Name,
		LocationID:       row.LocationID,
		IsShopkeeper:     row.IsShopkeeper,
		Money:            money,
	}, nil
}

func mapEntities(rows []generated.Entity) ([]domain.Entity, error) {
	entities := make([]domain.Entity, 0, len(rows))
	for _, row := range rows {
		entity, err := mapEntity(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

func mapInventoryRecord(row generated.Inventory) (*domain.InventoryRecord, error) {
	price, err := numericToDecimalPtr(row.Price)
	if err != nil {
		return nil, err
	}
	return &domain.InventoryRecord{
		ID:       row.InventoryRecordID,
		EntityID: row.EntityID,
		ItemID:   row.ItemID,
		Quantity: int(row.Quantity),
		Price:    price,
	}, nil
}

func mapHoldings(rows []generated.ListHoldingsRow) []domain.Holding {
	holdings := make([]domain.Holding, 0, len(rows))
	for _, row := range rows {
		holdings = append(holdings, domain.Holding{
			Item: domain.Item{
				ID:          row.ItemID,
				Name:        row.Name,
				Description: row.Description,
			},
			Quantity: int(row.Quantity),
		})
	}
	return holdings
}

func mapListings(rows []generated.ListForSaleRow) ([]domain.ForSaleListing, error) {
	listings := make([]domain.ForSaleListing, 0, len(rows))
	for _, row := range rows {
		price, err := numericToDecimalPtr(row.Price)
		if err != nil {
			return nil, err
		}
		listings = append(listings, domain.ForSaleListing{
			Record: domain.InventoryRecord{
				ID:       row.InventoryRecordID,
				EntityID: row.EntityID,
				ItemID:   row.ItemID,
				Quantity: int(row.Quantity),
				Price:    price,
			},
			Item: domain.Item{
				ID:          row.ItemID,
				Name:        row.Name,
				Description: row.Description,
			},
		})
	}
	return listings, nil
}
