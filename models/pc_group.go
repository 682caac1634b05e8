package models

// PCGroup mirrors the legacy pc_group table, one row per customer
// account. The schema is owned by PCRT; columns are mapped read-only
// and no primary key is declared so that anomalous duplicate rows in
// the legacy data still scan.
type PCGroup struct {
	PCGroupID      int    `gorm:"column:pcgroupid"`
	PCGroupName    string `gorm:"column:pcgroupname"`
	GrpPhone       string `gorm:"column:grpphone"`
	GrpCellPhone   string `gorm:"column:grpcellphone"`
	GrpWorkPhone   string `gorm:"column:grpworkphone"`
	GrpEmail       string `gorm:"column:grpemail"`
	GrpAddress1    string `gorm:"column:grpaddress1"`
	GrpAddress2    string `gorm:"column:grpaddress2"`
	GrpCity        string `gorm:"column:grpcity"`
	GrpState       string `gorm:"column:grpstate"`
	GrpZip         string `gorm:"column:grpzip"`
	GrpPrefContact string `gorm:"column:grpprefcontact"`
	GrpNotes       string `gorm:"column:grpnotes;type:text"`
	GrpCompany     string `gorm:"column:grpcompany"`
}

func (PCGroup) TableName() string { return "pc_group" }
