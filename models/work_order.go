package models

import (
	"time"
)

// PCWorkOrder mirrors the legacy pc_wo table, one row per repair job.
type PCWorkOrder struct {
	WOID       int        `gorm:"column:woid"`
	PCID       int        `gorm:"column:pcid"`
	ProbDesc   string     `gorm:"column:probdesc;type:text"`
	PCPriority int        `gorm:"column:pcpriority"`
	DropDate   *time.Time `gorm:"column:dropdate"`
	ReadyDate  *time.Time `gorm:"column:readydate"`
	PickupDate *time.Time `gorm:"column:pickupdate"`
	PCStatus   int        `gorm:"column:pcstatus"`
	Called     int        `gorm:"column:called"`
}

func (PCWorkOrder) TableName() string { return "pc_wo" }

// WorkOrder is the fully resolved API view of a pc_wo row: customer
// resolved through the asset's group, notes partitioned, status looked
// up by value against boxstyles (nil when the code matches no row).
type WorkOrder struct {
	ID             int        `json:"id"`
	PCID           int        `json:"pcid"`
	Customer       *Customer  `json:"customer"`
	JobDescription string     `json:"job_description"`
	JobNotes       *JobNotes  `json:"job_notes"`
	Priority       *int       `json:"priority"`
	DropOffDate    *time.Time `json:"drop_off_date"`
	ReadyDate      *time.Time `json:"ready_date"`
	CollectedDate  *time.Time `json:"collected_date"`
	Status         *Status    `json:"status"`
	CallType       string     `json:"call_type"`
}
