package database

import (
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Triarom-Engineering/pcrt-rest-api/models"
	"github.com/Triarom-Engineering/pcrt-rest-api/utils"
)

// RepairCartInterface aggregates the billable line items (parts and
// labour) attached to a work order.
type RepairCartInterface struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewRepairCartInterface(db *gorm.DB) *RepairCartInterface {
	return &RepairCartInterface{
		db:  db,
		log: utils.InfoLogger.WithField("module", "RepairCartInterface"),
	}
}

func formatRepairItem(row models.RepairCartRow) models.RepairLineItem {
	return models.RepairLineItem{
		ID:               row.CartItemID,
		Type:             row.CartType,
		StockID:          row.CartStockID,
		LaborDesc:        row.CartLaborDesc,
		TaxEx:            row.TaxEx,
		ItemTax:          row.ItemTax,
		OriginalPrice:    row.OrigPrice,
		DiscountType:     row.DiscountType,
		OurPrice:         row.OurPrice,
		ItemSerialNumber: row.ItemSerial,
		Quantity:         row.Quantity,
		UnitPrice:        row.UnitPrice,
	}
}

// parseDecimal reads one of the legacy decimal-string money columns.
// A value that does not parse poisons the running total with NaN, so a
// corrupt row is visible in the output instead of silently skipped.
func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// GetRepairItemsForWorkOrder lists a work order's cart rows and
// computes the total cost as the sum of (unit price + tax) * quantity
// per item. A work order with no cart reports ErrNotFound.
func (ri *RepairCartInterface) GetRepairItemsForWorkOrder(workOrderID int) (*models.RepairCost, error) {
	ri.log.Debugf("get_repair_items_for_work_order: %d", workOrderID)

	var rows []models.RepairCartRow
	if err := ri.db.Where("pcwo = ?", workOrderID).Find(&rows).Error; err != nil {
		ri.log.Warnf("get_repair_items_for_work_order: lookup failed for work order id %d: %v", workOrderID, err)
		return nil, gatewayErr("get_repair_items_for_work_order", err)
	}

	if len(rows) == 0 {
		ri.log.Debugf("get_repair_items_for_work_order: no results for work order id %d", workOrderID)
		return nil, ErrNotFound
	}

	cost := &models.RepairCost{
		Items: make([]models.RepairLineItem, 0, len(rows)),
	}

	for _, row := range rows {
		item := formatRepairItem(row)
		cost.Items = append(cost.Items, item)
		cost.Total += (parseDecimal(item.UnitPrice) + parseDecimal(item.ItemTax)) * float64(item.Quantity)
	}

	ri.log.Debugf("get_repair_items_for_work_order: returning %d repair items", len(cost.Items))
	return cost, nil
}
