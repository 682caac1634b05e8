package models

// BoxStyle mirrors the legacy boxstyles table, PCRT's work order
// status dictionary.
type BoxStyle struct {
	StatusID int    `gorm:"column:statusid"`
	BoxTitle string `gorm:"column:boxtitle"`
}

func (BoxStyle) TableName() string { return "boxstyles" }

type Status struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
