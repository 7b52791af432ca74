package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pathwaycare/intake-api/internal/catalog"
	"github.com/pathwaycare/intake-api/internal/models"
	"github.com/pathwaycare/intake-api/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenerateDocuments expands an intake form into one document per catalog
// entry, snapshotting the form's current field values into each. Any prior
// documents for the form are replaced in the same transaction, so concurrent
// readers never observe a half-generated batch. Returns the new documents in
// catalog order.
func GenerateDocuments(db *gorm.DB, intakeFormID string, actor CurrentUser) ([]models.Document, error) {
	var documents []models.Document

	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock the form row so concurrent regenerations of the same form
		// serialize instead of interleaving deletes and creates. SQLite has no
		// row locks; its transactions serialize writers already.
		query := tx
		if tx.Dialector.Name() != "sqlite" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var form models.IntakeForm
		if err := query.First(&form, "id = ?", intakeFormID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Intake form not found")
			}
			return err
		}

		if err := tx.Where("intake_form_id = ?", form.ID).
			Delete(&models.Document{}).Error; err != nil {
			return err
		}

		snapshot, err := form.Snapshot()
		if err != nil {
			return err
		}

		for _, tpl := range catalog.Templates() {
			formData := make(map[string]interface{}, len(snapshot)+1)
			for k, v := range snapshot {
				formData[k] = v
			}
			formData["template"] = tpl.Template

			raw, err := json.Marshal(formData)
			if err != nil {
				return err
			}

			formID := form.ID
			doc := models.Document{
				Title:                tpl.Title,
				Category:             tpl.Category,
				AdditionalCategories: datatypes.NewJSONSlice(tpl.AdditionalCategories),
				FormData:             datatypes.JSON(raw),
				IntakeFormID:         &formID,
				CreatedBy:            actor.ID,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
			documents = append(documents, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// StandaloneDocumentInput is the payload for creating a document that has no
// parent intake form.
type StandaloneDocumentInput struct {
	Title                string                 `json:"title"`
	Template             string                 `json:"template"`
	Category             string                 `json:"category"`
	AdditionalCategories []string               `json:"additionalCategories"`
	CreatedFor           string                 `json:"createdFor"`
	FormData             map[string]interface{} `json:"formData"`
}

// CreateStandaloneDocument stores a one-off document owned by the actor.
func CreateStandaloneDocument(db *gorm.DB, input StandaloneDocumentInput, actor CurrentUser) (*models.Document, error) {
	if input.Title == "" || input.Template == "" || input.Category == "" {
		return nil, types.NewValidationError("Please provide title, template, and category for the document")
	}
	if !models.ValidCategory(input.Category) {
		return nil, types.NewValidationError(fmt.Sprintf("Invalid category: %s", input.Category))
	}
	for _, c := range input.AdditionalCategories {
		if !models.ValidCategory(c) {
			return nil, types.NewValidationError(fmt.Sprintf("Invalid category: %s", c))
		}
	}

	formData := make(map[string]interface{}, len(input.FormData)+1)
	for k, v := range input.FormData {
		formData[k] = v
	}
	formData["template"] = input.Template
	raw, err := json.Marshal(formData)
	if err != nil {
		return nil, err
	}

	additional := input.AdditionalCategories
	if additional == nil {
		additional = []string{}
	}
	doc := models.Document{
		Title:                input.Title,
		Category:             input.Category,
		AdditionalCategories: datatypes.NewJSONSlice(additional),
		StandAlone:           true,
		CreatedFor:           input.CreatedFor,
		FormData:             datatypes.JSON(raw),
		CreatedBy:            actor.ID,
	}
	if err := db.Create(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDocument fetches one document by id.
func GetDocument(db *gorm.DB, id string) (*models.Document, error) {
	var doc models.Document
	if err := db.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("Document not found")
		}
		return nil, err
	}
	return &doc, nil
}

// GetDocumentsByIntakeForm returns every document generated from the form.
func GetDocumentsByIntakeForm(db *gorm.DB, intakeFormID string) ([]models.Document, error) {
	var documents []models.Document
	if err := db.Where("intake_form_id = ?", intakeFormID).
		Order("created_at").Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

// GetDocumentsByCategory returns documents whose primary category matches, or
// whose additionalCategories contain the value. An optional intake form id
// narrows the result to one form's batch. The result set is unbounded; this
// is an operational tool with small volumes.
func GetDocumentsByCategory(db *gorm.DB, category, intakeFormID string) ([]models.Document, error) {
	// additional_categories is a JSON array; match the quoted element text so
	// "In House Move" does not match a substring of another value.
	pattern := fmt.Sprintf(`%%%q%%`, category)
	query := db.Where("category = ? OR additional_categories LIKE ?", category, pattern)
	if intakeFormID != "" {
		query = query.Where("intake_form_id = ?", intakeFormID)
	}
	var documents []models.Document
	if err := query.Order("created_at").Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

// ListStandaloneDocuments returns standalone documents visible to the actor.
func ListStandaloneDocuments(db *gorm.DB, actor CurrentUser) ([]models.Document, error) {
	query := db.Where("stand_alone = ?", true)
	if !actor.IsAdmin() {
		query = query.Where("created_by = ?", actor.ID)
	}
	var documents []models.Document
	if err := query.Order("created_at DESC").Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

// UpdateDocumentFormData replaces a document's formData payload.
func UpdateDocumentFormData(db *gorm.DB, id string, formData map[string]interface{}, actor CurrentUser) (*models.Document, error) {
	doc, err := GetDocument(db, id)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(formData)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc.FormData = datatypes.JSON(raw)
	doc.UpdatedBy = actor.ID
	doc.UpdatedAt = &now
	if err := db.Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// PermanentlyDeleteDocument hard-deletes one document. Form-derived documents
// are admin-only; standalone documents may also be deleted by their owner.
func PermanentlyDeleteDocument(db *gorm.DB, id string, actor CurrentUser) error {
	doc, err := GetDocument(db, id)
	if err != nil {
		return err
	}
	if !CanDeleteDocument(actor, doc) {
		if doc.StandAlone {
			return types.NewForbiddenError("Not authorized to delete this document")
		}
		return types.NewForbiddenError("Only admins can permanently delete intake-related documents")
	}
	return db.Delete(doc).Error
}

// BulkDeleteDocuments hard-deletes the subset of the requested documents the
// actor is allowed to remove, silently dropping the rest. It fails with
// Forbidden only when nothing in the batch is permitted.
func BulkDeleteDocuments(db *gorm.DB, ids []string, actor CurrentUser) (int64, error) {
	if len(ids) == 0 {
		return 0, types.NewValidationError("Please provide an array of document IDs to delete")
	}

	var documents []models.Document
	if err := db.Where("id IN ?", ids).Find(&documents).Error; err != nil {
		return 0, err
	}

	allowed := make([]string, 0, len(documents))
	for i := range documents {
		if CanDeleteDocument(actor, &documents[i]) {
			allowed = append(allowed, documents[i].ID)
		}
	}
	if len(allowed) == 0 {
		return 0, types.NewForbiddenError("Not authorized to delete any of the selected documents")
	}

	result := db.Where("id IN ?", allowed).Delete(&models.Document{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
