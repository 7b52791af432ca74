package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Form status values. "Archived" is only reachable through the archive toggle.
const (
	StatusInProgress  = "In Progress"
	StatusCompleted   = "Completed"
	StatusPending     = "Pending"
	StatusNeedsReview = "Needs Review"
	StatusArchived    = "Archived"
)

// ValidStatus reports whether status is settable through the status endpoint.
// Archived is excluded; it is driven by the archive toggle.
func ValidStatus(status string) bool {
	switch status {
	case StatusInProgress, StatusCompleted, StatusPending, StatusNeedsReview:
		return true
	}
	return false
}

// Signature types accepted on an intake form.
const (
	SignatureChild      = "childSignature"
	SignatureParent     = "parentSignature"
	SignatureCaseworker = "caseworkerSignature"
	SignatureSupervisor = "supervisorSignature"
	SignatureAgencyRep  = "agencyRepSignature"
)

// ValidSignatureType reports whether t is one of the five form signature slots.
func ValidSignatureType(t string) bool {
	switch t {
	case SignatureChild, SignatureParent, SignatureCaseworker,
		SignatureSupervisor, SignatureAgencyRep:
		return true
	}
	return false
}

// Enumerations for typed intake fields, mirroring the agency's paper forms.
var (
	Offices = []string{"Santa Maria", "Bakersfield", "Riverside", "San Bernardino"}

	TransactionTypes = []string{
		"Intake", "In House Move", "Termination", "Shelter Placement", "LOC Change",
	}

	Ethnicities = []string{
		"African American", "Asian/Pacific Island", "Latino", "Native American",
		"White", "Other", "Unknown",
	}

	Genders = []string{"Male", "Female"}

	ClientStatuses = []int{300, 601, 602}

	PriorPlacements = []string{
		"Natural Parent", "County Facility", "County Foster Home", "County Hospital",
		"Foster Care Agency", "Friend of Family", "Group Home", "Jamison Center",
		"Legal Guardianship", "Relative", "Unknown",
	}

	PlacementReasons = []string{
		"Abandoned", "Domestic Violence", "Drug Baby", "Mental Abuse", "Neglect",
		"No Care Taker", "Other", "Physical Abuse", "Probation", "In House Move",
		"Sexual Abuse to Sibling", "Sexual Abuse", "Unknown", "Voluntary",
	}

	CareLevels = []string{"Level 1", "Level 2", "Level 3", "Level 4", "Level 5"}
)

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ValidOffice reports whether office is a known agency office.
func ValidOffice(office string) bool { return contains(Offices, office) }

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t string) bool { return contains(TransactionTypes, t) }

// ValidEthnicity reports whether e is a known ethnicity value.
func ValidEthnicity(e string) bool { return contains(Ethnicities, e) }

// ValidGender reports whether g is a known gender value.
func ValidGender(g string) bool { return contains(Genders, g) }

// ValidClientStatus reports whether s is a known client status code.
func ValidClientStatus(s int) bool {
	for _, code := range ClientStatuses {
		if code == s {
			return true
		}
	}
	return false
}

// ValidPriorPlacement reports whether p is a known prior placement value.
func ValidPriorPlacement(p string) bool { return contains(PriorPlacements, p) }

// ValidPlacementReason reports whether r is a known reason for placement.
func ValidPlacementReason(r string) bool { return contains(PlacementReasons, r) }

// ValidCareLevel reports whether l is a known level of care.
func ValidCareLevel(l string) bool { return contains(CareLevels, l) }

// IntakeForm is the client/case record submitted by a worker. Documents are
// generated from a point-in-time snapshot of these fields, so later edits do
// not retroactively change paperwork.
type IntakeForm struct {
	ID string `gorm:"type:char(36);primaryKey" json:"id"`

	// Office information
	YourName          string     `gorm:"size:255;not null" json:"yourName"`
	Office            string     `gorm:"size:64;default:Santa Maria" json:"office"`
	DateSubmitted     time.Time  `json:"dateSubmitted"`
	TransactionDate   *time.Time `json:"transactionDate"`
	TypeOfTransaction string     `gorm:"size:64;not null" json:"typeOfTransaction"`

	// Case assignment
	PathwayRepresentative string `gorm:"size:255" json:"pathwayRepresentative"`
	PositionJobTitle      string `gorm:"size:255;default:Social Worker" json:"positionJobTitle"`
	IntakeRepresentative  string `gorm:"size:255" json:"intakeRepresentative"`
	OfficeNumber          string `gorm:"size:32;default:201" json:"officeNumber"`
	PhoneNumber           string `gorm:"size:32;default:'(805) 739-1111'" json:"phoneNumber"`

	// Client information
	CaseNumber         string     `gorm:"size:64;not null;index" json:"caseNumber"`
	Name               string     `gorm:"size:255;not null" json:"name"`
	Age                int        `json:"age"`
	DateOfBirth        *time.Time `json:"dateOfBirth"`
	Ethnicity          string     `gorm:"size:64;default:Unknown" json:"ethnicity"`
	Gender             string     `gorm:"size:16;not null" json:"gender"`
	ClientStatus       int        `gorm:"default:300" json:"clientStatus"`
	PriorPlacement     string     `gorm:"size:64" json:"priorPlacement"`
	ReasonForPlacement string     `gorm:"size:64;not null" json:"reasonForPlacement"`
	LevelOfCare        string     `gorm:"size:32;not null" json:"levelOfCare"`

	// Mother/baby information
	InfantFullName    string     `gorm:"size:255" json:"infantFullName"`
	InfantDateOfBirth *time.Time `json:"infantDateOfBirth"`
	InfantAge         int        `json:"infantAge"`
	InfantIntakeDate  *time.Time `json:"infantIntakeDate"`
	InfantGender      string     `gorm:"size:16" json:"infantGender"`
	InfantEthnicity   string     `gorm:"size:64" json:"infantEthnicity"`

	// Foster home information
	FosterParentsPayment        string `gorm:"size:64" json:"fosterParentsPayment"`
	NameOfFosterParents         string `gorm:"size:255" json:"nameOfFosterParents"`
	FosterParentsTelephone      string `gorm:"size:32" json:"fosterParentsTelephone"`
	FosterParentsAddress        string `gorm:"size:255" json:"fosterParentsAddress"`
	FosterParentsMailingAddress string `gorm:"size:255" json:"fosterParentsMailingAddress"`
	FosterParentsCity           string `gorm:"size:128" json:"fosterParentsCity"`
	FosterParentsState          string `gorm:"size:64;default:California" json:"fosterParentsState"`
	FosterParentsZip            string `gorm:"size:16" json:"fosterParentsZip"`

	// County worker information
	CountyWillPay         string `gorm:"size:64" json:"countyWillPay"`
	CountyWorkerName      string `gorm:"size:255" json:"countyWorkerName"`
	CountyWorkerTitle     string `gorm:"size:64;default:CSW" json:"countyWorkerTitle"`
	NameOfCounty          string `gorm:"size:128;default:Santa Barbara" json:"nameOfCounty"`
	NameOfDepartment      string `gorm:"size:128;default:DHS" json:"nameOfDepartment"`
	CountyWorkerTelephone string `gorm:"size:32" json:"countyWorkerTelephone"`
	CountyWorkerAddress   string `gorm:"size:255" json:"countyWorkerAddress"`
	CountyWorkerCity      string `gorm:"size:128" json:"countyWorkerCity"`
	CountyWorkerState     string `gorm:"size:64;default:CA" json:"countyWorkerState"`
	CountyWorkerZip       string `gorm:"size:16" json:"countyWorkerZip"`

	// Signatures and metadata. Signature maps are keyed by signature type so
	// single entries can be set or removed without touching siblings.
	Signatures      datatypes.JSONType[map[string]string] `json:"signatures"`
	SignatureLabels datatypes.JSONType[map[string]string] `json:"signatureLabels"`

	Status           string    `gorm:"size:32;default:In Progress" json:"status"`
	Archived         bool      `gorm:"default:false" json:"archived"`
	LastStatusUpdate time.Time `json:"lastStatusUpdate"`

	CreatedBy string     `gorm:"type:char(36);not null;index" json:"createdBy"`
	UpdatedBy string     `gorm:"type:char(36)" json:"updatedBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// BeforeCreate assigns a UUID key and stamps submission defaults.
func (f *IntakeForm) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.DateSubmitted.IsZero() {
		f.DateSubmitted = time.Now().UTC()
	}
	if f.LastStatusUpdate.IsZero() {
		f.LastStatusUpdate = f.DateSubmitted
	}
	return nil
}

// Snapshot flattens the form into a map for embedding in generated document
// formData. The JSON round trip keeps field names aligned with the API shape.
func (f *IntakeForm) Snapshot() (map[string]interface{}, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	var snapshot map[string]interface{}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// TableName overrides the table name for IntakeForm
func (IntakeForm) TableName() string {
	return "intake_forms"
}
