package domain

import "github.com/shopspring/decimal"

// InventoryRecord is a (holder, item) quantity row. Shop stock carries a
// price; a player's backpack slot does not.
type InventoryRecord struct {
	ID       int64            `json:"inventory_record_id"`
	EntityID int64            `json:"entity_id"`
	ItemID   int64            `json:"item_id"`
	Quantity int              `json:"quantity"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// ForSale reports whether the record is priced shop stock
func (r *InventoryRecord) ForSale() bool {
	return r.Price != nil
}

// Holding is one line of an entity's backpack
type Holding struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// ForSaleListing is one line of a shop's catalog
type ForSaleListing struct {
	Record InventoryRecord `json:"record"`
	Item   Item            `json:"item"`
}

// PurchaseResult describes a completed purchase
type PurchaseResult struct {
	BuyerID           int64           `json:"buyer_id"`
	InventoryRecordID int64           `json:"inventory_record_id"`
	Item              Item            `json:"item"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Total             decimal.Decimal `json:"total"`
	MoneyRemaining    decimal.Decimal `json:"money_remaining"`
	StockRemaining    int             `json:"stock_remaining"`
}
