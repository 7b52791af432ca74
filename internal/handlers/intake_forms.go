package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pathwaycare/intake-api/internal/models"
	"github.com/pathwaycare/intake-api/internal/services"
	"github.com/pathwaycare/intake-api/internal/types"
	"github.com/pathwaycare/intake-api/internal/utils"
	"gorm.io/gorm"
)

// CreateIntakeForm stores a new intake form owned by the caller.
func CreateIntakeForm(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form models.IntakeForm
		if err := c.BodyParser(&form); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		created, err := services.CreateIntakeForm(db, &form, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendCreated(c, created)
	}
}

// ListIntakeForms returns the forms visible to the caller.
func ListIntakeForms(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		forms, err := services.ListIntakeForms(db, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendList(c, forms, int64(len(forms)))
	}
}

// GetIntakeForm returns one form by id.
func GetIntakeForm(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := services.GetIntakeForm(db, c.Params("id"), currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, form)
	}
}

// UpdateIntakeForm replaces a form's field values.
func UpdateIntakeForm(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input models.IntakeForm
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		form, err := services.UpdateIntakeForm(db, c.Params("id"), &input, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, form)
	}
}

type statusInput struct {
	Status string `json:"status"`
}

// UpdateFormStatus moves a form through the workflow states.
func UpdateFormStatus(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input statusInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		form, err := services.UpdateFormStatus(db, c.Params("id"), input.Status, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, form)
	}
}

type archiveInput struct {
	Archived bool `json:"archived"`
}

// ToggleFormArchive flips a form's archived flag.
func ToggleFormArchive(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input archiveInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		form, err := services.ToggleFormArchive(db, c.Params("id"), input.Archived, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, form)
	}
}

type formSignatureInput struct {
	SignatureType string `json:"signatureType"`
	Signature     string `json:"signature"`
}

// UpsertFormSignature stores a participant signature on a form.
func UpsertFormSignature(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input formSignatureInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		form, err := services.UpsertFormSignature(db, c.Params("id"), input.SignatureType, input.Signature, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, form)
	}
}

type signatureLabelInput struct {
	SignatureType string `json:"signatureType"`
	Label         string `json:"label"`
}

// UpdateFormSignatureLabel sets the display label for a signature slot.
func UpdateFormSignatureLabel(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input signatureLabelInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		form, err := services.UpdateFormSignatureLabel(db, c.Params("id"), input.SignatureType, input.Label, currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendData(c, form)
	}
}

// DeleteIntakeForm hard-deletes a form. Admin only.
func DeleteIntakeForm(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := services.PermanentlyDeleteIntakeForm(db, c.Params("id"), currentUser(c)); err != nil {
			return err
		}
		return utils.SendMessage(c, "Intake form deleted successfully")
	}
}

type bulkDeleteInput struct {
	IDs types.FlexList[string] `json:"ids"`
}

// BulkDeleteIntakeForms hard-deletes a batch of forms. Admin only.
func BulkDeleteIntakeForms(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input bulkDeleteInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		deleted, err := services.BulkDeleteIntakeForms(db, input.IDs.Slice(), currentUser(c))
		if err != nil {
			return err
		}
		return utils.SendList(c, nil, deleted)
	}
}

func currentUser(c *fiber.Ctx) services.CurrentUser {
	user, _ := c.Locals("user").(services.CurrentUser)
	return user
}
