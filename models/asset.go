package models

// Asset is the API view of a pc_owner row. CustomerID is the owning
// group's id, 0 for a standalone asset.
type Asset struct {
	ID         int    `json:"id"`
	CustomerID int    `json:"customer_id"`
	Make       string `json:"make"`
}
