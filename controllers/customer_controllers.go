package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Triarom-Engineering/pcrt-rest-api/database"
	"github.com/Triarom-Engineering/pcrt-rest-api/utils"
)

const (
	invalidCustomerDesc = "Invalid customer specified."
	invalidAssetDesc    = "Invalid asset specified."
)

type CustomerController struct {
	customers  *database.CustomerInterface
	workOrders *database.WorkOrderInterface
}

func NewCustomerController(db *gorm.DB, completeStatusID int) *CustomerController {
	return &CustomerController{
		customers:  database.NewCustomerInterface(db),
		workOrders: database.NewWorkOrderInterface(db, completeStatusID),
	}
}

// GetCustomerByID -> GET /api/v1/customer/:id
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "invalid_customer", invalidCustomerDesc)
		return
	}

	customer, err := cc.customers.GetCustomerByID(id)
	if err != nil {
		respondLookupError(c, err, "invalid_customer", invalidCustomerDesc)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetWorkOrdersForCustomer -> GET /api/v1/customer/:id/work_orders
func (cc *CustomerController) GetWorkOrdersForCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "invalid_customer", invalidCustomerDesc)
		return
	}

	// Verify the customer exists before resolving their work orders.
	if _, err := cc.customers.GetCustomerByID(id); err != nil {
		respondLookupError(c, err, "invalid_customer", invalidCustomerDesc)
		return
	}

	workOrders, err := cc.workOrders.GetWorkOrderByCustomerID(id, nil)
	if err != nil {
		respondLookupError(c, err, "no_work_orders", "No work orders found for this customer.")
		return
	}

	c.JSON(http.StatusOK, workOrders)
}

// GetAssetsForCustomer -> GET /api/v1/customer/:id/assets
func (cc *CustomerController) GetAssetsForCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "invalid_customer", invalidCustomerDesc)
		return
	}

	if _, err := cc.customers.GetCustomerByID(id); err != nil {
		respondLookupError(c, err, "invalid_customer", invalidCustomerDesc)
		return
	}

	assets, err := cc.customers.GetAssetsByCustomerID(id)
	if err != nil {
		respondLookupError(c, err, "no_assets", "No assets found for this customer.")
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetCustomerAssetByID -> GET /api/v1/customer/:id/asset/:asset_id
func (cc *CustomerController) GetCustomerAssetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "invalid_customer", invalidCustomerDesc)
		return
	}

	assetID, err := strconv.Atoi(c.Param("asset_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "invalid_asset", invalidAssetDesc)
		return
	}

	if _, err := cc.customers.GetCustomerByID(id); err != nil {
		respondLookupError(c, err, "invalid_customer", invalidCustomerDesc)
		return
	}

	asset, err := cc.customers.GetCustomerAsset(assetID)
	if err != nil {
		respondLookupError(c, err, "invalid_asset", invalidAssetDesc)
		return
	}

	// The asset must belong to the customer in the path.
	if asset.CustomerID != id {
		utils.RespondError(c, http.StatusNotFound, "invalid_asset", invalidAssetDesc)
		return
	}

	c.JSON(http.StatusOK, asset)
}
