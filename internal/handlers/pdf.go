package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pathwaycare/intake-api/internal/pdf"
	"github.com/pathwaycare/intake-api/internal/types"
)

type renderOneInput struct {
	HTML     string `json:"html"`
	Filename string `json:"filename"`
}

type renderManyInput struct {
	HTMLDocuments []string `json:"htmlDocuments"`
	Filename      string   `json:"filename"`
}

func sendPDF(c *fiber.Ctx, data []byte, filename string) error {
	if filename == "" {
		filename = "document.pdf"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// RenderPDF renders one HTML document and streams the PDF back.
func RenderPDF(svc *pdf.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input renderOneInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		data, err := svc.RenderOne(c.Context(), input.HTML)
		if err != nil {
			return err
		}
		return sendPDF(c, data, input.Filename)
	}
}

// RenderPDFBatch renders several HTML documents and streams one merged PDF.
func RenderPDFBatch(svc *pdf.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input renderManyInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		data, err := svc.RenderMany(c.Context(), input.HTMLDocuments)
		if err != nil {
			return err
		}
		return sendPDF(c, data, input.Filename)
	}
}
