package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Triarom-Engineering/pcrt-rest-api/models"
	"github.com/Triarom-Engineering/pcrt-rest-api/utils"
)

// CustomerInterface resolves customer and asset resources from the
// legacy pc_group / pc_owner tables.
type CustomerInterface struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewCustomerInterface(db *gorm.DB) *CustomerInterface {
	return &CustomerInterface{
		db:  db,
		log: utils.InfoLogger.WithField("module", "CustomerInterface"),
	}
}

// fieldPair holds the two legacy columns backing one customer field:
// the group-level value and the per-asset value.
type fieldPair struct {
	group string
	asset string
}

// resolve applies the customer formatting rule: the group value wins
// when non-empty, then the asset value, else null.
func (p fieldPair) resolve() *string {
	if p.group != "" {
		v := p.group
		return &v
	}
	if p.asset != "" {
		v := p.asset
		return &v
	}
	return nil
}

// customerRow carries both sides of every bilateral customer field.
// Rows read from pc_group leave the asset side zero and rows from
// pc_owner leave the group side zero, so the same formatting rule
// covers both sources.
type customerRow struct {
	groupID      int
	assetID      int
	name         fieldPair
	phoneHome    fieldPair
	phoneMobile  fieldPair
	phoneWork    fieldPair
	email        fieldPair
	addressLine1 fieldPair
	addressLine2 fieldPair
	city         fieldPair
	state        fieldPair
	postCode     fieldPair
	prefContact  fieldPair
	notes        fieldPair
	company      fieldPair
}

func groupSource(g models.PCGroup) customerRow {
	return customerRow{
		groupID:      g.PCGroupID,
		name:         fieldPair{group: g.PCGroupName},
		phoneHome:    fieldPair{group: g.GrpPhone},
		phoneMobile:  fieldPair{group: g.GrpCellPhone},
		phoneWork:    fieldPair{group: g.GrpWorkPhone},
		email:        fieldPair{group: g.GrpEmail},
		addressLine1: fieldPair{group: g.GrpAddress1},
		addressLine2: fieldPair{group: g.GrpAddress2},
		city:         fieldPair{group: g.GrpCity},
		state:        fieldPair{group: g.GrpState},
		postCode:     fieldPair{group: g.GrpZip},
		prefContact:  fieldPair{group: g.GrpPrefContact},
		notes:        fieldPair{group: g.GrpNotes},
		company:      fieldPair{group: g.GrpCompany},
	}
}

func ownerSource(o models.PCOwner) customerRow {
	return customerRow{
		groupID:      o.PCGroupID,
		assetID:      o.PCID,
		name:         fieldPair{asset: o.PCName},
		phoneHome:    fieldPair{asset: o.PCPhone},
		phoneMobile:  fieldPair{asset: o.PCCellPhone},
		phoneWork:    fieldPair{asset: o.PCWorkPhone},
		email:        fieldPair{asset: o.PCEmail},
		addressLine1: fieldPair{asset: o.PCAddress1},
		addressLine2: fieldPair{asset: o.PCAddress2},
		city:         fieldPair{asset: o.PCCity},
		state:        fieldPair{asset: o.PCState},
		postCode:     fieldPair{asset: o.PCZip},
		prefContact:  fieldPair{asset: o.PCPrefContact},
		notes:        fieldPair{asset: o.PCNotes},
		company:      fieldPair{asset: o.PCCompany},
	}
}

// formatCustomer converts a customer row into its API shape. The
// customer is a "group" exactly when the row carries a non-zero group
// id; this is the canonical type rule for both source tables.
func formatCustomer(row customerRow) *models.Customer {
	c := &models.Customer{
		Name: row.name.resolve(),
		Phone: models.Phone{
			Home:   row.phoneHome.resolve(),
			Mobile: row.phoneMobile.resolve(),
			Work:   row.phoneWork.resolve(),
		},
		Email: row.email.resolve(),
		Address: models.Address{
			Line1:    row.addressLine1.resolve(),
			Line2:    row.addressLine2.resolve(),
			City:     row.city.resolve(),
			State:    row.state.resolve(),
			PostCode: row.postCode.resolve(),
		},
		PreferredContact: row.prefContact.resolve(),
		Notes:            row.notes.resolve(),
		Company:          row.company.resolve(),
	}

	if row.groupID != 0 {
		c.ID = row.groupID
		c.Type = "group"
	} else {
		c.ID = row.assetID
		c.Type = "asset"
	}

	return c
}

// GetCustomerByID looks a customer up by pc_group.pcgroupid.
func (ci *CustomerInterface) GetCustomerByID(id int) (*models.Customer, error) {
	ci.log.Debugf("get_customer_by_id: %d", id)

	var groups []models.PCGroup
	if err := ci.db.Where("pcgroupid = ?", id).Find(&groups).Error; err != nil {
		ci.log.Warnf("get_customer_by_id: lookup failed for id %d: %v", id, err)
		return nil, gatewayErr("get_customer_by_id", err)
	}

	if len(groups) == 0 {
		ci.log.Debugf("get_customer_by_id: no results for id %d", id)
		return nil, ErrNotFound
	}

	if len(groups) > 1 {
		ci.log.Warnf("get_customer_by_id: multiple results for id %d, using first", id)
	}

	return formatCustomer(groupSource(groups[0])), nil
}

// GetCustomerByPCID resolves a customer from an asset id: the pc_owner
// row is fetched, and when it belongs to a group the group record is
// resolved instead. A standalone asset (group id 0) is formatted from
// the owner row directly.
func (ci *CustomerInterface) GetCustomerByPCID(id int) (*models.Customer, error) {
	ci.log.Debugf("get_customer_by_pc_id: %d", id)

	var owners []models.PCOwner
	if err := ci.db.Where("pcid = ?", id).Find(&owners).Error; err != nil {
		ci.log.Warnf("get_customer_by_pc_id: lookup failed for id %d: %v", id, err)
		return nil, gatewayErr("get_customer_by_pc_id", err)
	}

	if len(owners) == 0 {
		ci.log.Debugf("get_customer_by_pc_id: no results for id %d", id)
		return nil, ErrNotFound
	}

	owner := owners[0]
	if owner.PCGroupID == 0 {
		ci.log.Debugf("get_customer_by_pc_id: pc %d has no group, using asset rather than group", id)
		return formatCustomer(ownerSource(owner)), nil
	}

	ci.log.Debugf("resolved pcid %d to pcgroupid %d, fetching customer", id, owner.PCGroupID)
	return ci.GetCustomerByID(owner.PCGroupID)
}

// GetAssetsByCustomerID lists every asset owned by a group. A group
// with zero assets reports ErrNotFound rather than an empty list; the
// two cases were never distinguished upstream and callers still treat
// them identically.
func (ci *CustomerInterface) GetAssetsByCustomerID(id int) ([]models.Asset, error) {
	ci.log.Debugf("get_assets_by_customer_id: %d", id)

	var owners []models.PCOwner
	if err := ci.db.Where("pcgroupid = ?", id).Find(&owners).Error; err != nil {
		ci.log.Warnf("get_assets_by_customer_id: lookup failed for id %d: %v", id, err)
		return nil, gatewayErr("get_assets_by_customer_id", err)
	}

	if len(owners) == 0 {
		ci.log.Debugf("get_assets_by_customer_id: no results for id %d", id)
		return nil, ErrNotFound
	}

	assets := make([]models.Asset, 0, len(owners))
	for _, owner := range owners {
		// TODO: surface the PCRT asset type (laptop, desktop, ...) once
		// the pctype column semantics are confirmed against PCRT.
		assets = append(assets, models.Asset{
			ID:         owner.PCID,
			CustomerID: owner.PCGroupID,
			Make:       owner.PCMake,
		})
	}

	ci.log.Debugf("get_assets_by_customer_id: returning %d assets for customer %d", len(assets), id)
	return assets, nil
}

// GetCustomerAsset looks a single asset up by pc_owner.pcid.
func (ci *CustomerInterface) GetCustomerAsset(id int) (*models.Asset, error) {
	ci.log.Debugf("get_customer_asset: %d", id)

	var owners []models.PCOwner
	if err := ci.db.Where("pcid = ?", id).Find(&owners).Error; err != nil {
		ci.log.Warnf("get_customer_asset: lookup failed for id %d: %v", id, err)
		return nil, gatewayErr("get_customer_asset", err)
	}

	if len(owners) == 0 {
		ci.log.Debugf("get_customer_asset: no results for id %d", id)
		return nil, ErrNotFound
	}

	if len(owners) > 1 {
		ci.log.Warnf("get_customer_asset: multiple results for id %d, using first", id)
	}

	return &models.Asset{
		ID:         owners[0].PCID,
		CustomerID: owners[0].PCGroupID,
		Make:       owners[0].PCMake,
	}, nil
}
