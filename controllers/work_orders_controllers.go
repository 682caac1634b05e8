package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Triarom-Engineering/pcrt-rest-api/database"
	"github.com/Triarom-Engineering/pcrt-rest-api/utils"
)

// WorkOrdersController serves the collection-level work order
// endpoints, typically used for finding work orders.
type WorkOrdersController struct {
	workOrders *database.WorkOrderInterface
}

func NewWorkOrdersController(db *gorm.DB, completeStatusID int) *WorkOrdersController {
	return &WorkOrdersController{
		workOrders: database.NewWorkOrderInterface(db, completeStatusID),
	}
}

// GetOpenWorkOrders -> GET /api/v1/work_orders/open?status=<id|"any">
//
// Open means any status other than the configured complete status. A
// numeric status value narrows the result to that exact status.
func (wc *WorkOrdersController) GetOpenWorkOrders(c *gin.Context) {
	status := c.DefaultQuery("status", "any")

	var statusID *int
	if status != "any" {
		id, err := strconv.Atoi(status)
		if err != nil {
			utils.RespondError(c, http.StatusNotFound, "invalid_status", "Invalid status specified.")
			return
		}
		statusID = &id
	}

	workOrders, err := wc.workOrders.GetOpenWorkOrders(statusID)
	if err != nil {
		respondLookupError(c, err, "no_work_orders", "No open work orders found.")
		return
	}

	c.JSON(http.StatusOK, workOrders)
}

// GetStatuses -> GET /api/v1/work_orders/statuses
func (wc *WorkOrdersController) GetStatuses(c *gin.Context) {
	statuses, err := wc.workOrders.GetWorkOrderStatuses()
	if err != nil {
		utils.ErrorLogger.Errorf("GET %s: %v", c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, "lookup_failed", "Work order statuses could not be fetched.")
		return
	}

	c.JSON(http.StatusOK, statuses)
}
