package database

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Triarom-Engineering/pcrt-rest-api/models"
	"github.com/Triarom-Engineering/pcrt-rest-api/utils"
)

// callTypes maps the pc_wo.called code to its call outcome label.
// This dictionary is fixed in PCRT itself and is not stored in the
// database.
var callTypes = map[int]string{
	1: "Not Called",
	2: "Called",
	7: "Left Voicemail",
	5: "Sent SMS",
	6: "Sent Email",
	3: "Called, No Answer",
	4: "Called, Waiting for Call Back",
}

const callTypeNotSpecified = "Not Specified"

// WorkOrderInterface resolves work orders from the legacy pc_wo table,
// composing customer, note and status lookups into one resource.
type WorkOrderInterface struct {
	db               *gorm.DB
	log              *logrus.Entry
	customers        *CustomerInterface
	completeStatusID int
}

// NewWorkOrderInterface builds a work order resolver.
// completeStatusID is the boxstyles status marking a collected work
// order; it only affects GetOpenWorkOrders.
func NewWorkOrderInterface(db *gorm.DB, completeStatusID int) *WorkOrderInterface {
	return &WorkOrderInterface{
		db:               db,
		log:              utils.InfoLogger.WithField("module", "WorkOrderInterface"),
		customers:        NewCustomerInterface(db),
		completeStatusID: completeStatusID,
	}
}

// GetWorkOrderStatuses lists the available work order statuses from
// boxstyles. An empty table is reported as a gateway error rather than
// a not-found: statuses are seeded by PCRT itself, so their absence
// means the server is pointed at the wrong database.
func (wi *WorkOrderInterface) GetWorkOrderStatuses() ([]models.Status, error) {
	wi.log.Debug("get_work_order_statuses")

	var rows []models.BoxStyle
	if err := wi.db.Find(&rows).Error; err != nil {
		wi.log.Errorf("get_work_order_statuses: lookup failed: %v", err)
		return nil, gatewayErr("get_work_order_statuses", err)
	}

	if len(rows) == 0 {
		wi.log.Error("get_work_order_statuses: no results, is the database misconfigured?")
		return nil, gatewayErr("get_work_order_statuses", errors.New("boxstyles table is empty"))
	}

	statuses := make([]models.Status, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, models.Status{
			ID:   row.StatusID,
			Name: row.BoxTitle,
		})
	}

	return statuses, nil
}

// GetNotesForJob partitions a work order's wonotes rows into internal
// and external notes. Zero rows is a normal outcome: the lists come
// back empty, never absent.
func (wi *WorkOrderInterface) GetNotesForJob(id int) (*models.JobNotes, error) {
	wi.log.Debugf("get_notes_for_job: %d", id)

	var rows []models.WONote
	if err := wi.db.Where("woid = ?", id).Find(&rows).Error; err != nil {
		wi.log.Warnf("get_notes_for_job: lookup failed for id %d: %v", id, err)
		return nil, gatewayErr("get_notes_for_job", err)
	}

	notes := &models.JobNotes{
		Internal: []models.Note{},
		External: []models.Note{},
	}

	for _, row := range rows {
		note := models.Note{
			ID:       row.NoteID,
			Date:     row.NoteTime,
			Engineer: row.NoteUser,
			Text:     row.TheNote,
		}
		switch row.NoteType {
		case 1:
			notes.Internal = append(notes.Internal, note)
		case 0:
			notes.External = append(notes.External, note)
		}
		// Other discriminator values are legacy cruft and are dropped.
	}

	return notes, nil
}

// FormatWorkOrder resolves a pc_wo row into its API shape: the
// customer via the asset's group chain, the notes, and the status by
// value against the status table. A status code matching no row
// resolves to nil and is not an error; a missing customer likewise
// resolves to null.
func (wi *WorkOrderInterface) FormatWorkOrder(row models.PCWorkOrder) (*models.WorkOrder, error) {
	customer, err := wi.customers.GetCustomerByPCID(row.PCID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	notes, err := wi.GetNotesForJob(row.WOID)
	if err != nil {
		return nil, err
	}

	statuses, err := wi.GetWorkOrderStatuses()
	if err != nil {
		return nil, err
	}

	var status *models.Status
	for i := range statuses {
		if statuses[i].ID == row.PCStatus {
			status = &statuses[i]
			break
		}
	}

	callType, ok := callTypes[row.Called]
	if !ok {
		callType = callTypeNotSpecified
	}

	var priority *int
	if row.PCPriority != 0 {
		p := row.PCPriority
		priority = &p
	}

	return &models.WorkOrder{
		ID:             row.WOID,
		PCID:           row.PCID,
		Customer:       customer,
		JobDescription: row.ProbDesc,
		JobNotes:       notes,
		Priority:       priority,
		DropOffDate:    row.DropDate,
		ReadyDate:      row.ReadyDate,
		CollectedDate:  row.PickupDate,
		Status:         status,
		CallType:       callType,
	}, nil
}

// GetWorkOrderByID looks a work order up by pc_wo.woid.
func (wi *WorkOrderInterface) GetWorkOrderByID(id int) (*models.WorkOrder, error) {
	wi.log.Debugf("get_work_order_by_id: %d", id)

	var rows []models.PCWorkOrder
	if err := wi.db.Where("woid = ?", id).Find(&rows).Error; err != nil {
		wi.log.Warnf("get_work_order_by_id: lookup failed for id %d: %v", id, err)
		return nil, gatewayErr("get_work_order_by_id", err)
	}

	if len(rows) == 0 {
		wi.log.Debugf("get_work_order_by_id: no results for id %d", id)
		return nil, ErrNotFound
	}

	if len(rows) > 1 {
		wi.log.Warnf("get_work_order_by_id: multiple results for id %d, using first", id)
	}

	return wi.FormatWorkOrder(rows[0])
}

// GetWorkOrderByCustomerID lists every work order belonging to a
// customer's assets. statusID, when non-nil, is applied as an exact
// post-filter over the fetched rows. An empty result after filtering
// reports ErrNotFound.
func (wi *WorkOrderInterface) GetWorkOrderByCustomerID(id int, statusID *int) ([]models.WorkOrder, error) {
	wi.log.Debugf("get_work_order_by_customer_id: %d", id)

	assets, err := wi.customers.GetAssetsByCustomerID(id)
	if err != nil {
		// No assets means no work orders; the gateway case propagates.
		wi.log.Debugf("get_work_order_by_customer_id: no assets found for customer %d", id)
		return nil, err
	}

	assetIDs := make([]int, 0, len(assets))
	for _, asset := range assets {
		assetIDs = append(assetIDs, asset.ID)
	}

	var rows []models.PCWorkOrder
	if err := wi.db.Where("pcid IN ?", assetIDs).Find(&rows).Error; err != nil {
		wi.log.Warnf("get_work_order_by_customer_id: lookup failed for id %d: %v", id, err)
		return nil, gatewayErr("get_work_order_by_customer_id", err)
	}

	if statusID != nil {
		wi.log.Debugf("get_work_order_by_customer_id: filtering by status %d", *statusID)
		filtered := rows[:0]
		for _, row := range rows {
			if row.PCStatus == *statusID {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	if len(rows) == 0 {
		wi.log.Debugf("get_work_order_by_customer_id: no results for id %d", id)
		return nil, ErrNotFound
	}

	workOrders := make([]models.WorkOrder, 0, len(rows))
	for _, row := range rows {
		wi.log.Debugf("get_work_order_by_customer_id: formatting work order %d", row.WOID)
		workOrder, err := wi.FormatWorkOrder(row)
		if err != nil {
			return nil, err
		}
		workOrders = append(workOrders, *workOrder)
	}

	wi.log.Debugf("get_work_order_by_customer_id: returning %d work orders", len(workOrders))
	return workOrders, nil
}

// GetOpenWorkOrders lists every work order whose status is not the
// configured complete status, optionally post-filtered to one exact
// status. An empty result reports ErrNotFound.
func (wi *WorkOrderInterface) GetOpenWorkOrders(statusID *int) ([]models.WorkOrder, error) {
	wi.log.Debug("get_open_work_orders")

	var rows []models.PCWorkOrder
	if err := wi.db.Where("pcstatus <> ?", wi.completeStatusID).Find(&rows).Error; err != nil {
		wi.log.Warnf("get_open_work_orders: lookup failed: %v", err)
		return nil, gatewayErr("get_open_work_orders", err)
	}

	if statusID != nil {
		wi.log.Debugf("get_open_work_orders: filtering by status %d", *statusID)
		filtered := rows[:0]
		for _, row := range rows {
			if row.PCStatus == *statusID {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	if len(rows) == 0 {
		wi.log.Debug("get_open_work_orders: no results")
		return nil, ErrNotFound
	}

	workOrders := make([]models.WorkOrder, 0, len(rows))
	for _, row := range rows {
		workOrder, err := wi.FormatWorkOrder(row)
		if err != nil {
			return nil, err
		}
		workOrders = append(workOrders, *workOrder)
	}

	wi.log.Debugf("get_open_work_orders: returning %d work orders", len(workOrders))
	return workOrders, nil
}
