package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/pathwaycare/intake-api/internal/models"
	"github.com/pathwaycare/intake-api/internal/types"
	"gorm.io/gorm"
)

func validateIntakeForm(form *models.IntakeForm) error {
	switch {
	case form.YourName == "":
		return types.NewValidationError("Your name is required")
	case form.TransactionDate == nil:
		return types.NewValidationError("Transaction date is required")
	case form.TypeOfTransaction == "":
		return types.NewValidationError("Type of transaction is required")
	case form.CaseNumber == "":
		return types.NewValidationError("Case number is required")
	case form.Name == "":
		return types.NewValidationError("Client name is required")
	case form.DateOfBirth == nil:
		return types.NewValidationError("Date of birth is required")
	case form.Gender == "":
		return types.NewValidationError("Gender is required")
	case form.ReasonForPlacement == "":
		return types.NewValidationError("Reason for placement is required")
	case form.LevelOfCare == "":
		return types.NewValidationError("Level of care is required")
	}

	if !models.ValidTransactionType(form.TypeOfTransaction) {
		return types.NewValidationError(fmt.Sprintf("Invalid type of transaction: %s", form.TypeOfTransaction))
	}
	if !models.ValidGender(form.Gender) {
		return types.NewValidationError(fmt.Sprintf("Invalid gender: %s", form.Gender))
	}
	if !models.ValidPlacementReason(form.ReasonForPlacement) {
		return types.NewValidationError(fmt.Sprintf("Invalid reason for placement: %s", form.ReasonForPlacement))
	}
	if !models.ValidCareLevel(form.LevelOfCare) {
		return types.NewValidationError(fmt.Sprintf("Invalid level of care: %s", form.LevelOfCare))
	}
	if form.Office != "" && !models.ValidOffice(form.Office) {
		return types.NewValidationError(fmt.Sprintf("Invalid office: %s", form.Office))
	}
	if form.Ethnicity != "" && !models.ValidEthnicity(form.Ethnicity) {
		return types.NewValidationError(fmt.Sprintf("Invalid ethnicity: %s", form.Ethnicity))
	}
	if form.ClientStatus != 0 && !models.ValidClientStatus(form.ClientStatus) {
		return types.NewValidationError(fmt.Sprintf("Invalid client status: %d", form.ClientStatus))
	}
	if form.PriorPlacement != "" && !models.ValidPriorPlacement(form.PriorPlacement) {
		return types.NewValidationError(fmt.Sprintf("Invalid prior placement: %s", form.PriorPlacement))
	}
	if form.InfantGender != "" && !models.ValidGender(form.InfantGender) {
		return types.NewValidationError(fmt.Sprintf("Invalid infant gender: %s", form.InfantGender))
	}
	if form.InfantEthnicity != "" && !models.ValidEthnicity(form.InfantEthnicity) {
		return types.NewValidationError(fmt.Sprintf("Invalid infant ethnicity: %s", form.InfantEthnicity))
	}
	return nil
}

// CreateIntakeForm stores a new form owned by the actor.
func CreateIntakeForm(db *gorm.DB, form *models.IntakeForm, actor CurrentUser) (*models.IntakeForm, error) {
	if err := validateIntakeForm(form); err != nil {
		return nil, err
	}
	form.ID = ""
	form.CreatedBy = actor.ID
	form.UpdatedBy = ""
	form.UpdatedAt = nil
	if form.Status == "" {
		form.Status = models.StatusInProgress
	}
	if err := db.Create(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

// ListIntakeForms returns forms visible to the actor: admins see everything,
// other roles only their own.
func ListIntakeForms(db *gorm.DB, actor CurrentUser) ([]models.IntakeForm, error) {
	query := db.Order("created_at DESC")
	if !actor.IsAdmin() {
		query = query.Where("created_by = ?", actor.ID)
	}
	var forms []models.IntakeForm
	if err := query.Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// GetIntakeForm fetches one form, enforcing the ownership predicate.
func GetIntakeForm(db *gorm.DB, id string, actor CurrentUser) (*models.IntakeForm, error) {
	var form models.IntakeForm
	if err := db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("Intake form not found")
		}
		return nil, err
	}
	if !CanAccess(actor, form.CreatedBy) {
		return nil, types.NewForbiddenError("Not authorized to access this intake form")
	}
	return &form, nil
}

// UpdateIntakeForm replaces the form's field values. Status, archive state and
// signatures are managed by their own operations and left untouched here.
func UpdateIntakeForm(db *gorm.DB, id string, input *models.IntakeForm, actor CurrentUser) (*models.IntakeForm, error) {
	form, err := GetIntakeForm(db, id, actor)
	if err != nil {
		return nil, err
	}
	if err := validateIntakeForm(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	input.ID = form.ID
	input.Signatures = form.Signatures
	input.SignatureLabels = form.SignatureLabels
	input.Status = form.Status
	input.Archived = form.Archived
	input.LastStatusUpdate = form.LastStatusUpdate
	input.DateSubmitted = form.DateSubmitted
	input.CreatedBy = form.CreatedBy
	input.CreatedAt = form.CreatedAt
	input.UpdatedBy = actor.ID
	input.UpdatedAt = &now

	if err := db.Save(input).Error; err != nil {
		return nil, err
	}
	return input, nil
}

// UpdateFormStatus moves the form through the workflow states. Archived is
// not settable here; it is driven by the archive toggle.
func UpdateFormStatus(db *gorm.DB, id, status string, actor CurrentUser) (*models.IntakeForm, error) {
	if !models.ValidStatus(status) {
		return nil, types.NewValidationError("Invalid status value")
	}
	form, err := GetIntakeForm(db, id, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	form.Status = status
	form.LastStatusUpdate = now
	form.UpdatedBy = actor.ID
	form.UpdatedAt = &now
	if err := db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

// ToggleFormArchive flips the archived flag. Archiving forces status to
// Archived; unarchiving an Archived form resets it to In Progress.
func ToggleFormArchive(db *gorm.DB, id string, archived bool, actor CurrentUser) (*models.IntakeForm, error) {
	form, err := GetIntakeForm(db, id, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	form.Archived = archived
	form.UpdatedBy = actor.ID
	form.UpdatedAt = &now
	if archived {
		form.Status = models.StatusArchived
		form.LastStatusUpdate = now
	} else if form.Status == models.StatusArchived {
		form.Status = models.StatusInProgress
		form.LastStatusUpdate = now
	}
	if err := db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

// PermanentlyDeleteIntakeForm hard-deletes a form. Admin only; generated
// documents are left in place, they carry their own snapshot.
func PermanentlyDeleteIntakeForm(db *gorm.DB, id string, actor CurrentUser) error {
	if !actor.IsAdmin() {
		return types.NewForbiddenError("Only admins can permanently delete forms")
	}
	var form models.IntakeForm
	if err := db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFoundError("Intake form not found")
		}
		return err
	}
	return db.Delete(&form).Error
}

// BulkDeleteIntakeForms hard-deletes a batch of forms. Admin only, and the
// batch is all-or-nothing: no per-id permission filtering happens here.
func BulkDeleteIntakeForms(db *gorm.DB, ids []string, actor CurrentUser) (int64, error) {
	if !actor.IsAdmin() {
		return 0, types.NewForbiddenError("Only admins can bulk delete forms")
	}
	if len(ids) == 0 {
		return 0, types.NewValidationError("Please provide an array of form IDs to delete")
	}
	result := db.Where("id IN ?", ids).Delete(&models.IntakeForm{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
