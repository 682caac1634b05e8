package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Triarom-Engineering/pcrt-rest-api/database"
	"github.com/Triarom-Engineering/pcrt-rest-api/utils"
)

const invalidWorkOrderDesc = "Invalid work order specified."

type WorkOrderController struct {
	workOrders *database.WorkOrderInterface
	repairCart *database.RepairCartInterface
}

func NewWorkOrderController(db *gorm.DB, completeStatusID int) *WorkOrderController {
	return &WorkOrderController{
		workOrders: database.NewWorkOrderInterface(db, completeStatusID),
		repairCart: database.NewRepairCartInterface(db),
	}
}

// GetWorkOrder -> GET /api/v1/work_order/:id
func (wc *WorkOrderController) GetWorkOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "invalid_work_order", invalidWorkOrderDesc)
		return
	}

	workOrder, err := wc.workOrders.GetWorkOrderByID(id)
	if err != nil {
		respondLookupError(c, err, "invalid_work_order", invalidWorkOrderDesc)
		return
	}

	c.JSON(http.StatusOK, workOrder)
}

// GetRepairCart -> GET /api/v1/work_order/:id/repair_cart
func (wc *WorkOrderController) GetRepairCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "invalid_work_order", invalidWorkOrderDesc)
		return
	}

	cost, err := wc.repairCart.GetRepairItemsForWorkOrder(id)
	if err != nil {
		respondLookupError(c, err, "invalid_repair_cart", "No repair items found for this work order.")
		return
	}

	c.JSON(http.StatusOK, cost)
}
