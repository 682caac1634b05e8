package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Triarom-Engineering/pcrt-rest-api/models"
)

const testCompleteStatusID = 5

// seedCustomerWithAsset creates group 1 owning asset 10.
func seedCustomerWithAsset(t *testing.T, db *gorm.DB) {
	t.Helper()
	assert.NoError(t, db.Create(&models.PCGroup{PCGroupID: 1, PCGroupName: "Smith Household"}).Error)
	assert.NoError(t, db.Create(&models.PCOwner{PCID: 10, PCGroupID: 1, PCName: "John Smith", PCMake: "Dell"}).Error)
}

func TestGetNotesForJobPartitionsByType(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)

	when := time.Date(2023, 4, 2, 9, 30, 0, 0, time.UTC)
	seed := []models.WONote{
		{NoteID: 1, WOID: 100, NoteTime: when, NoteUser: "sam", TheNote: "replaced PSU", NoteType: 1},
		{NoteID: 2, WOID: 100, NoteTime: when, NoteUser: "sam", TheNote: "ready to collect", NoteType: 0},
		{NoteID: 3, WOID: 100, NoteTime: when, NoteUser: "sam", TheNote: "bad discriminator", NoteType: 2},
		{NoteID: 4, WOID: 999, NoteTime: when, NoteUser: "alex", TheNote: "other job", NoteType: 0},
	}
	for _, note := range seed {
		assert.NoError(t, db.Create(&note).Error)
	}

	notes, err := wi.GetNotesForJob(100)
	assert.NoError(t, err)
	assert.Len(t, notes.Internal, 1)
	assert.Len(t, notes.External, 1)
	assert.Equal(t, "replaced PSU", notes.Internal[0].Text)
	assert.Equal(t, "sam", notes.Internal[0].Engineer)
	assert.Equal(t, "ready to collect", notes.External[0].Text)
}

func TestGetNotesForJobZeroRowsReturnsEmptyLists(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)

	notes, err := wi.GetNotesForJob(100)
	assert.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes.Internal)
	assert.Empty(t, notes.External)
}

func TestGetWorkOrderStatuses(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)
	seedStatuses(t, db)

	statuses, err := wi.GetWorkOrderStatuses()
	assert.NoError(t, err)
	assert.Len(t, statuses, 3)
	assert.Equal(t, models.Status{ID: 1, Name: "Waiting for Bench"}, statuses[0])
}

func TestGetWorkOrderStatusesEmptyTableIsAnError(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)

	// An empty status table means the server points at the wrong
	// database, which is worse than a per-resource miss.
	statuses, err := wi.GetWorkOrderStatuses()
	assert.Nil(t, statuses)
	var gatewayError *GatewayError
	assert.ErrorAs(t, err, &gatewayError)
}

func TestGetWorkOrderByID(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)
	seedCustomerWithAsset(t, db)
	seedStatuses(t, db)

	dropOff := time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
	workOrder := models.PCWorkOrder{
		WOID:     100,
		PCID:     10,
		ProbDesc: "No boot, suspected PSU",
		PCStatus: 2,
		Called:   3,
		DropDate: &dropOff,
	}
	assert.NoError(t, db.Create(&workOrder).Error)

	resolved, err := wi.GetWorkOrderByID(100)
	assert.NoError(t, err)
	assert.Equal(t, 100, resolved.ID)
	assert.Equal(t, 10, resolved.PCID)
	assert.Equal(t, "No boot, suspected PSU", resolved.JobDescription)
	assert.Equal(t, "Called, No Answer", resolved.CallType)
	assert.Equal(t, &models.Status{ID: 2, Name: "In Progress"}, resolved.Status)
	assert.Nil(t, resolved.Priority)
	if assert.NotNil(t, resolved.DropOffDate) {
		assert.True(t, dropOff.Equal(*resolved.DropOffDate))
	}
	assert.Nil(t, resolved.ReadyDate)

	// Customer resolved through the asset's group.
	assert.Equal(t, 1, resolved.Customer.ID)
	assert.Equal(t, "group", resolved.Customer.Type)
	assert.Equal(t, "Smith Household", *resolved.Customer.Name)

	// No notes yet, but the lists are present.
	assert.NotNil(t, resolved.JobNotes)
	assert.Empty(t, resolved.JobNotes.Internal)
	assert.Empty(t, resolved.JobNotes.External)
}

func TestGetWorkOrderByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)

	workOrder, err := wi.GetWorkOrderByID(100)
	assert.Nil(t, workOrder)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormatWorkOrderUnknownCallCode(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)
	seedCustomerWithAsset(t, db)
	seedStatuses(t, db)

	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 100, PCID: 10, PCStatus: 1, Called: 99}).Error)

	resolved, err := wi.GetWorkOrderByID(100)
	assert.NoError(t, err)
	assert.Equal(t, "Not Specified", resolved.CallType)
}

func TestFormatWorkOrderUnmatchedStatusIsNull(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)
	seedCustomerWithAsset(t, db)
	seedStatuses(t, db)

	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 100, PCID: 10, PCStatus: 42, Called: 1}).Error)

	resolved, err := wi.GetWorkOrderByID(100)
	assert.NoError(t, err)
	assert.Nil(t, resolved.Status)
}

func TestGetWorkOrderByCustomerID(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)
	seedCustomerWithAsset(t, db)
	seedStatuses(t, db)

	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 100, PCID: 10, PCStatus: 1, Called: 1}).Error)
	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 101, PCID: 10, PCStatus: 2, Called: 1}).Error)

	workOrders, err := wi.GetWorkOrderByCustomerID(1, nil)
	assert.NoError(t, err)
	assert.Len(t, workOrders, 2)
}

func TestGetWorkOrderByCustomerIDStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)
	seedCustomerWithAsset(t, db)
	seedStatuses(t, db)

	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 100, PCID: 10, PCStatus: 1, Called: 1}).Error)
	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 101, PCID: 10, PCStatus: 2, Called: 1}).Error)

	statusID := 2
	workOrders, err := wi.GetWorkOrderByCustomerID(1, &statusID)
	assert.NoError(t, err)
	assert.Len(t, workOrders, 1)
	assert.Equal(t, 101, workOrders[0].ID)

	// Zero matches after filtering is a not-found, not an empty list.
	statusID = 3
	workOrders, err = wi.GetWorkOrderByCustomerID(1, &statusID)
	assert.Nil(t, workOrders)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetWorkOrderByCustomerIDNoAssets(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)

	workOrders, err := wi.GetWorkOrderByCustomerID(1, nil)
	assert.Nil(t, workOrders)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOpenWorkOrders(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)
	seedCustomerWithAsset(t, db)
	seedStatuses(t, db)

	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 100, PCID: 10, PCStatus: 1, Called: 1}).Error)
	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 101, PCID: 10, PCStatus: 2, Called: 1}).Error)
	// Collected, so never open.
	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 102, PCID: 10, PCStatus: testCompleteStatusID, Called: 2}).Error)

	workOrders, err := wi.GetOpenWorkOrders(nil)
	assert.NoError(t, err)
	assert.Len(t, workOrders, 2)

	statusID := 2
	workOrders, err = wi.GetOpenWorkOrders(&statusID)
	assert.NoError(t, err)
	assert.Len(t, workOrders, 1)
	assert.Equal(t, 101, workOrders[0].ID)

	// Filtering for the complete status never matches an open order.
	statusID = testCompleteStatusID
	workOrders, err = wi.GetOpenWorkOrders(&statusID)
	assert.Nil(t, workOrders)
	assert.ErrorIs(t, err, ErrNotFound)
}

// A zero status id is still an exact filter. "No filter" is expressed
// by passing nil, never by a zero sentinel; legacy rows with an unset
// pcstatus carry 0 and must be selectable.
func TestGetOpenWorkOrdersZeroStatusFiltersExactly(t *testing.T) {
	db := setupTestDB(t)
	wi := NewWorkOrderInterface(db, testCompleteStatusID)
	seedCustomerWithAsset(t, db)
	seedStatuses(t, db)

	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 100, PCID: 10, PCStatus: 0, Called: 1}).Error)
	assert.NoError(t, db.Create(&models.PCWorkOrder{WOID: 101, PCID: 10, PCStatus: 1, Called: 1}).Error)

	statusID := 0
	workOrders, err := wi.GetOpenWorkOrders(&statusID)
	assert.NoError(t, err)
	assert.Len(t, workOrders, 1)
	assert.Equal(t, 100, workOrders[0].ID)
}
