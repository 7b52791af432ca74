package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/pathwaycare/intake-api/internal/services"
	"github.com/pathwaycare/intake-api/internal/types"
	"github.com/pathwaycare/intake-api/internal/utils"
	"gorm.io/gorm"
)

// GenerateDocuments regenerates the full paperwork batch for an intake form.
func GenerateDocuments(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		documents, err := services.GenerateDocuments(db, c.Params("id"), currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendList(c, documents, int64(len(documents)))
	}
}

// CreateStandaloneDocument stores a one-off document.
func CreateStandaloneDocument(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input services.StandaloneDocumentInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		doc, err := services.CreateStandaloneDocument(db, input, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendCreated(c, doc)
	}
}

// ListStandaloneDocuments returns standalone documents visible to the caller.
func ListStandaloneDocuments(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		documents, err := services.ListStandaloneDocuments(db, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendList(c, documents, int64(len(documents)))
	}
}

// GetDocument returns one document by id.
func GetDocument(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := services.GetDocument(db, c.Params("id"))
		if err != nil {
			return err
		}
		return utils.SendData(c, doc)
	}
}

// GetDocumentsByIntakeForm returns the generated batch for one form.
func GetDocumentsByIntakeForm(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		documents, err := services.GetDocumentsByIntakeForm(db, c.Params("id"))
		if err != nil {
			return err
		}
		return utils.SendList(c, documents, int64(len(documents)))
	}
}

// GetDocumentsByCategory filters documents by primary or additional category,
// optionally scoped to one intake form via the intakeFormId query parameter.
func GetDocumentsByCategory(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := url.PathUnescape(c.Params("category"))
		if err != nil {
			return types.NewValidationError("Invalid category")
		}
		documents, err := services.GetDocumentsByCategory(db, category, c.Query("intakeFormId"))
		if err != nil {
			return err
		}
		return utils.SendList(c, documents, int64(len(documents)))
	}
}

type formDataInput struct {
	FormData map[string]interface{} `json:"formData"`
}

// UpdateDocumentFormData replaces a document's formData payload.
func UpdateDocumentFormData(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input formDataInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		doc, err := services.UpdateDocumentFormData(db, c.Params("id"), input.FormData, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, doc)
	}
}

// UpsertDocumentSignature adds or replaces one keyed signature on a document.
func UpsertDocumentSignature(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input services.SignatureInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		doc, err := services.UpsertDocumentSignature(db, c.Params("id"), input, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, doc)
	}
}

// DeleteDocumentSignature removes one keyed signature from a document.
func DeleteDocumentSignature(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := services.DeleteDocumentSignature(db, c.Params("id"), c.Params("key"), currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, doc)
	}
}

type standaloneSignaturesInput struct {
	Signatures map[string]string `json:"signatures"`
}

// SetStandaloneSignatures replaces the signature map of a standalone document.
func SetStandaloneSignatures(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input standaloneSignaturesInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		doc, err := services.SetStandaloneSignatures(db, c.Params("id"), input.Signatures, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, doc)
	}
}

// DeleteDocument hard-deletes one document.
func DeleteDocument(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := services.PermanentlyDeleteDocument(db, c.Params("id"), currentUser(c)); err != nil {
			return err
		}
		return utils.SendMessage(c, "Document deleted successfully")
	}
}

// BulkDeleteDocuments hard-deletes the permitted subset of a document batch.
func BulkDeleteDocuments(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input bulkDeleteInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		deleted, err := services.BulkDeleteDocuments(db, input.IDs.Slice(), currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendList(c, nil, deleted)
	}
}
