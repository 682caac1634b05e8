package models

import (
	"time"
)

// WONote mirrors the legacy wonotes table. NoteType 1 marks an
// internal (engineer-only) note, 0 a customer-visible one; any other
// value is legacy cruft and is dropped during formatting.
type WONote struct {
	NoteID   int       `gorm:"column:noteid"`
	WOID     int       `gorm:"column:woid"`
	NoteTime time.Time `gorm:"column:notetime"`
	NoteUser string    `gorm:"column:noteuser"`
	TheNote  string    `gorm:"column:thenote;type:text"`
	NoteType int       `gorm:"column:notetype"`
}

func (WONote) TableName() string { return "wonotes" }

type Note struct {
	ID       int       `json:"id"`
	Date     time.Time `json:"date"`
	Engineer string    `json:"engineer"`
	Text     string    `json:"text"`
}

// JobNotes partitions a work order's notes by visibility.
type JobNotes struct {
	Internal []Note `json:"internal"`
	External []Note `json:"external"`
}
