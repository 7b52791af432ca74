package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document categories. Membership for querying is the union of the primary
// category and any additional categories.
const (
	CategoryIntakePaperwork = "Intake Paperwork"
	CategoryShelterBed      = "Shelter Bed Documents"
	CategoryInHouseMove     = "In House Move"
)

// Categories lists every document category.
var Categories = []string{CategoryIntakePaperwork, CategoryShelterBed, CategoryInHouseMove}

// ValidCategory reports whether c is a known document category.
func ValidCategory(c string) bool { return contains(Categories, c) }

// Position locates a signature on a rendered document page.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SignatureEntry is one named signature on a document.
type SignatureEntry struct {
	Signature string   `json:"signature"`
	Position  Position `json:"position"`
}

// Document is a generated or standalone piece of case paperwork. Form-derived
// documents carry an IntakeFormID and a frozen snapshot of the form in
// FormData; standalone documents have StandAlone set and no parent form.
type Document struct {
	ID                   string                                        `gorm:"type:char(36);primaryKey" json:"id"`
	Title                string                                        `gorm:"size:255;not null" json:"title"`
	Category             string                                        `gorm:"size:64;not null;index" json:"category"`
	AdditionalCategories datatypes.JSONSlice[string]                   `json:"additionalCategories"`
	StandAlone           bool                                          `gorm:"default:false" json:"standAlone"`
	CreatedFor           string                                        `gorm:"size:255" json:"createdFor"`
	FormData             datatypes.JSON                                `gorm:"not null" json:"formData"`
	IntakeFormID         *string                                       `gorm:"type:char(36);index" json:"intakeForm"`
	Signatures           datatypes.JSONType[map[string]SignatureEntry] `json:"signatures"`
	CreatedBy            string                                        `gorm:"type:char(36);not null;index" json:"createdBy"`
	UpdatedBy            string                                        `gorm:"type:char(36)" json:"updatedBy"`
	CreatedAt            time.Time                                     `json:"createdAt"`
	UpdatedAt            *time.Time                                    `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (d *Document) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// InCategory reports whether the document belongs to category, either as its
// primary category or through additionalCategories.
func (d *Document) InCategory(category string) bool {
	if d.Category == category {
		return true
	}
	for _, c := range d.AdditionalCategories {
		if c == category {
			return true
		}
	}
	return false
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}
