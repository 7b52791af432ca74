// Package catalog holds the static registry of document templates. Every
// generation run instantiates one document per entry, in order. Adding or
// removing entries changes future batches only; existing documents are never
// touched.
package catalog

import "github.com/pathwaycare/intake-api/internal/models"

// Template describes one document to generate from an intake form.
type Template struct {
	Title                string
	Category             string
	AdditionalCategories []string
	Template             string
}

var templates = []Template{
	{
		Title:                "Notice of Action",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryInHouseMove},
		Template:             "N.O.A.",
	},
	{
		Title:                "ID-Emergency Information",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryShelterBed},
		Template:             "ID-Emergency Info",
	},
	{
		Title:                "Agency to Agency Agreement",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryShelterBed},
		Template:             "Agency to Agency Agreement",
	},
	{
		Title:                "Agency to Foster Parent",
		Category:             models.CategoryShelterBed,
		AdditionalCategories: []string{models.CategoryInHouseMove, models.CategoryIntakePaperwork},
		Template:             "Agency to Foster Parent",
	},
	{
		Title:                "Client Grievance Guidelines",
		Category:             models.CategoryInHouseMove,
		AdditionalCategories: []string{models.CategoryShelterBed},
		Template:             "Client Grievance Guidelines",
	},
	{
		Title:                "County Worker Grievance Guidelines",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryShelterBed},
		Template:             "County Worker Grievance Guidelines",
	},
	{
		Title:    "CHDP Form",
		Category: models.CategoryIntakePaperwork,
		Template: "CHPD",
	},
	{
		Title:                "Consent For Medical Treatment",
		Category:             models.CategoryInHouseMove,
		AdditionalCategories: []string{models.CategoryIntakePaperwork, models.CategoryShelterBed},
		Template:             "Medical Treatment",
	},
	{
		Title:    "PRN Authorization Letter",
		Category: models.CategoryIntakePaperwork,
		Template: "PRN Authorization Letter",
	},
	{
		Title:    "PRN Page 2",
		Category: models.CategoryIntakePaperwork,
		Template: "PRN Page 2",
	},
	{
		Title:                "Client Personal Rights",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryShelterBed},
		Template:             "Client Personal Rights",
	},
	{
		Title:    "Confirmation of T.B. Test",
		Category: models.CategoryIntakePaperwork,
		Template: "Confirm TB Test",
	},
	{
		Title:    "Confirmation of Ambulatory Status",
		Category: models.CategoryIntakePaperwork,
		Template: "Confirm Ambulatory Status",
	},
	{
		Title:                "Record of Client Cash Resources",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryInHouseMove},
		Template:             "Record of Client Cash Resources",
	},
	{
		Title:                "Client Initial Care Plan",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryShelterBed, models.CategoryInHouseMove},
		Template:             "Client Initial Care Plan",
	},
	{
		Title:                "Client Disciplinary Policy & Procedures",
		Category:             models.CategoryShelterBed,
		AdditionalCategories: []string{models.CategoryIntakePaperwork},
		Template:             "Client Disciplinary P. & P.",
	},
	{
		Title:                "Client Discharge",
		Category:             models.CategoryShelterBed,
		AdditionalCategories: []string{models.CategoryIntakePaperwork},
		Template:             "Client Discharge",
	},
	{
		Title:                "Acknowledgement of Prior Information",
		Category:             models.CategoryShelterBed,
		AdditionalCategories: []string{models.CategoryIntakePaperwork, models.CategoryInHouseMove},
		Template:             "Acknowledgement of Prior Info",
	},
	{
		Title:                "Home Placement Log",
		Category:             models.CategoryInHouseMove,
		AdditionalCategories: []string{models.CategoryIntakePaperwork},
		Template:             "Home Placement Log",
	},
	{
		Title:                "Emergency Information Log",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryShelterBed, models.CategoryInHouseMove},
		Template:             "Emergency Information Log",
	},
	{
		Title:    "Monthly Medication Record",
		Category: models.CategoryIntakePaperwork,
		Template: "Monthly Medication Record",
	},
	{
		Title:    "Medication & Destruction Record",
		Category: models.CategoryIntakePaperwork,
		Template: "Medication & Destruction Record",
	},
	{
		Title:    "Dental Treatment Record",
		Category: models.CategoryIntakePaperwork,
		Template: "Dental Treatment Record",
	},
	{
		Title:                "Quarterly Clothing Allowance",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryInHouseMove},
		Template:             "CA Form",
	},
	{
		Title:                "Quarterly Spending Allowance",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryInHouseMove},
		Template:             "Spending Allowance",
	},
	{
		Title:                "Consent to Release Medical/Confidential Information Authorization",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryShelterBed},
		Template:             "CRMCIA",
	},
	{
		Title:                "Placement Application",
		Category:             models.CategoryIntakePaperwork,
		AdditionalCategories: []string{models.CategoryShelterBed},
		Template:             "Placement Application",
	},
	{
		Title:    "Foster Parent Checklist",
		Category: models.CategoryIntakePaperwork,
		Template: "Checklist",
	},
}

// Templates returns the generation catalog in batch order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Size returns the number of catalog entries.
func Size() int {
	return len(templates)
}
