package models

import (
	"encoding/json"
	"math"
)

// RepairCartRow mirrors the legacy repaircart table, one row per
// billable part or labour line on a work order. PCRT stores the money
// columns as decimal strings, so they are carried as strings and only
// parsed when the cart total is computed.
type RepairCartRow struct {
	CartItemID    int    `gorm:"column:cart_item_id"`
	PCWO          int    `gorm:"column:pcwo"`
	CartType      string `gorm:"column:cart_type"`
	CartStockID   int    `gorm:"column:cart_stock_id"`
	CartLaborDesc string `gorm:"column:cart_labor_desc"`
	TaxEx         string `gorm:"column:taxex"`
	ItemTax       string `gorm:"column:itemtax"`
	OrigPrice     string `gorm:"column:origprice"`
	DiscountType  string `gorm:"column:discounttype"`
	OurPrice      string `gorm:"column:ourprice"`
	ItemSerial    string `gorm:"column:itemserial"`
	Quantity      int    `gorm:"column:quantity"`
	UnitPrice     string `gorm:"column:unit_price"`
}

func (RepairCartRow) TableName() string { return "repaircart" }

// RepairLineItem is the API view of a repaircart row. Money fields
// keep the stored decimal-string representation.
type RepairLineItem struct {
	ID               int    `json:"id"`
	Type             string `json:"type"`
	StockID          int    `json:"stock_id"`
	LaborDesc        string `json:"labor_desc"`
	TaxEx            string `json:"taxex"`
	ItemTax          string `json:"item_tax"`
	OriginalPrice    string `json:"original_price"`
	DiscountType     string `json:"discount_type"`
	OurPrice         string `json:"our_price"`
	ItemSerialNumber string `json:"item_serial_number"`
	Quantity         int    `json:"quantity"`
	UnitPrice        string `json:"unit_price"`
}

// RepairCost is a work order's cart plus its computed total. A row
// with a non-numeric money column poisons the total with NaN.
type RepairCost struct {
	Items []RepairLineItem `json:"items"`
	Total float64          `json:"total"`
}

// MarshalJSON emits a NaN total as null, since JSON has no NaN.
func (rc RepairCost) MarshalJSON() ([]byte, error) {
	type repairCost struct {
		Items []RepairLineItem `json:"items"`
		Total *float64         `json:"total"`
	}
	out := repairCost{Items: rc.Items}
	if !math.IsNaN(rc.Total) {
		out.Total = &rc.Total
	}
	return json.Marshal(out)
}
