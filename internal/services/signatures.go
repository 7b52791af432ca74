package services

import (
	"fmt"
	"time"

	"github.com/pathwaycare/intake-api/internal/models"
	"github.com/pathwaycare/intake-api/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SignatureInput carries one signature image plus its placement on the page.
type SignatureInput struct {
	Key       string           `json:"key"`
	Signature string           `json:"signature"`
	Position  *models.Position `json:"position"`
}

// UpsertDocumentSignature adds or replaces one keyed signature on a document.
// Sibling entries are preserved; a missing position defaults to the origin.
func UpsertDocumentSignature(db *gorm.DB, documentID string, input SignatureInput, actor CurrentUser) (*models.Document, error) {
	if input.Key == "" || input.Signature == "" {
		return nil, types.NewValidationError("Please provide a signature key and signature data")
	}
	doc, err := GetDocument(db, documentID)
	if err != nil {
		return nil, err
	}

	signatures := doc.Signatures.Data()
	if signatures == nil {
		signatures = make(map[string]models.SignatureEntry)
	}
	position := models.Position{}
	if input.Position != nil {
		position = *input.Position
	}
	signatures[input.Key] = models.SignatureEntry{
		Signature: input.Signature,
		Position:  position,
	}

	now := time.Now().UTC()
	doc.Signatures = datatypes.NewJSONType(signatures)
	doc.UpdatedBy = actor.ID
	doc.UpdatedAt = &now
	if err := db.Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDocumentSignature removes one keyed signature from a document. When
// the key is absent the call succeeds without writing, so the audit trail
// only records real changes.
func DeleteDocumentSignature(db *gorm.DB, documentID, key string, actor CurrentUser) (*models.Document, error) {
	doc, err := GetDocument(db, documentID)
	if err != nil {
		return nil, err
	}

	signatures := doc.Signatures.Data()
	if _, ok := signatures[key]; !ok {
		return doc, nil
	}
	delete(signatures, key)

	now := time.Now().UTC()
	doc.Signatures = datatypes.NewJSONType(signatures)
	doc.UpdatedBy = actor.ID
	doc.UpdatedAt = &now
	if err := db.Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// SetStandaloneSignatures replaces the whole signature map of a standalone
// document with the provided key to image pairs, every entry at the origin.
func SetStandaloneSignatures(db *gorm.DB, documentID string, entries map[string]string, actor CurrentUser) (*models.Document, error) {
	if len(entries) == 0 {
		return nil, types.NewValidationError("Please provide at least one signature")
	}
	doc, err := GetDocument(db, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.StandAlone {
		return nil, types.NewValidationError("Bulk signature replace is only available for standalone documents")
	}

	signatures := make(map[string]models.SignatureEntry, len(entries))
	for key, image := range entries {
		if key == "" || image == "" {
			return nil, types.NewValidationError("Signature keys and data must be non-empty")
		}
		signatures[key] = models.SignatureEntry{Signature: image}
	}

	now := time.Now().UTC()
	doc.Signatures = datatypes.NewJSONType(signatures)
	doc.UpdatedBy = actor.ID
	doc.UpdatedAt = &now
	if err := db.Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// UpsertFormSignature stores a signature image on the intake form itself,
// keyed by one of the fixed participant signature types.
func UpsertFormSignature(db *gorm.DB, formID, signatureType, signature string, actor CurrentUser) (*models.IntakeForm, error) {
	if !models.ValidSignatureType(signatureType) {
		return nil, types.NewValidationError(fmt.Sprintf("Invalid signature type: %s", signatureType))
	}
	if signature == "" {
		return nil, types.NewValidationError("Please provide signature data")
	}
	form, err := GetIntakeForm(db, formID, actor)
	if err != nil {
		return nil, err
	}

	signatures := form.Signatures.Data()
	if signatures == nil {
		signatures = make(map[string]string)
	}
	signatures[signatureType] = signature

	now := time.Now().UTC()
	form.Signatures = datatypes.NewJSONType(signatures)
	form.UpdatedBy = actor.ID
	form.UpdatedAt = &now
	if err := db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

// UpdateFormSignatureLabel sets the display label shown next to a participant
// signature slot, for example the printed name of the signing parent.
func UpdateFormSignatureLabel(db *gorm.DB, formID, signatureType, label string, actor CurrentUser) (*models.IntakeForm, error) {
	if !models.ValidSignatureType(signatureType) {
		return nil, types.NewValidationError(fmt.Sprintf("Invalid signature type: %s", signatureType))
	}
	form, err := GetIntakeForm(db, formID, actor)
	if err != nil {
		return nil, err
	}

	labels := form.SignatureLabels.Data()
	if labels == nil {
		labels = make(map[string]string)
	}
	labels[signatureType] = label

	now := time.Now().UTC()
	form.SignatureLabels = datatypes.NewJSONType(labels)
	form.UpdatedBy = actor.ID
	form.UpdatedAt = &now
	if err := db.Save(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}
