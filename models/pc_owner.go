package models

// PCOwner mirrors the legacy pc_owner table, one row per tracked PC
// asset. PCGroupID 0 is PCRT's sentinel for a standalone asset with no
// owning group, in which case the pc* contact columns carry the
// customer's details directly.
type PCOwner struct {
	PCID          int    `gorm:"column:pcid"`
	PCGroupID     int    `gorm:"column:pcgroupid"`
	PCName        string `gorm:"column:pcname"`
	PCPhone       string `gorm:"column:pcphone"`
	PCCellPhone   string `gorm:"column:pccellphone"`
	PCWorkPhone   string `gorm:"column:pcworkphone"`
	PCEmail       string `gorm:"column:pcemail"`
	PCAddress1    string `gorm:"column:pcaddress1"`
	PCAddress2    string `gorm:"column:pcaddress2"`
	PCCity        string `gorm:"column:pccity"`
	PCState       string `gorm:"column:pcstate"`
	PCZip         string `gorm:"column:pczip"`
	PCPrefContact string `gorm:"column:pcprefcontact"`
	PCNotes       string `gorm:"column:pcnotes;type:text"`
	PCCompany     string `gorm:"column:pccompany"`
	PCMake        string `gorm:"column:pcmake"`
}

func (PCOwner) TableName() string { return "pc_owner" }
