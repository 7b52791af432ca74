package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pathwaycare/intake-api/internal/config"
	"github.com/pathwaycare/intake-api/internal/middleware"
	"github.com/pathwaycare/intake-api/internal/pdf"
	"github.com/pathwaycare/intake-api/internal/utils"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the full API surface under /api/v1.
func RegisterRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, pdfSvc *pdf.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return utils.SendMessage(c, "ok")
	})

	api := app.Group("/api/v1", middleware.VersionMiddleware())

	auth := middleware.RequireAuth(cfg.JWTSecret)
	admin := middleware.RequireAdmin()

	authGroup := api.Group("/auth")
	authGroup.Post("/login", Login(db, cfg))
	authGroup.Post("/register", auth, admin, Register(db))
	authGroup.Get("/me", auth, Me(db))

	users := api.Group("/users", auth, admin)
	users.Get("/", ListUsers(db))
	users.Put("/:id/role", UpdateUserRole(db))
	users.Get("/:id/can-delete", CanDeleteUser(db))
	users.Delete("/:id", DeleteUser(db))

	forms := api.Group("/intake-forms", auth)
	forms.Post("/", CreateIntakeForm(db))
	forms.Get("/", ListIntakeForms(db))
	forms.Post("/bulk-delete", BulkDeleteIntakeForms(db))
	forms.Get("/:id", GetIntakeForm(db))
	forms.Put("/:id", UpdateIntakeForm(db))
	forms.Delete("/:id", DeleteIntakeForm(db))
	forms.Patch("/:id/status", UpdateFormStatus(db))
	forms.Patch("/:id/archive", ToggleFormArchive(db))
	forms.Post("/:id/signatures", UpsertFormSignature(db))
	forms.Patch("/:id/signature-labels", UpdateFormSignatureLabel(db))
	forms.Post("/:id/documents", GenerateDocuments(db))
	forms.Get("/:id/documents", GetDocumentsByIntakeForm(db))

	documents := api.Group("/documents", auth)
	documents.Post("/", CreateStandaloneDocument(db))
	documents.Get("/standalone", ListStandaloneDocuments(db))
	documents.Get("/category/:category", GetDocumentsByCategory(db))
	documents.Post("/bulk-delete", BulkDeleteDocuments(db))
	documents.Get("/:id", GetDocument(db))
	documents.Delete("/:id", DeleteDocument(db))
	documents.Patch("/:id/form-data", UpdateDocumentFormData(db))
	documents.Post("/:id/signatures", UpsertDocumentSignature(db))
	documents.Put("/:id/signatures", SetStandaloneSignatures(db))
	documents.Delete("/:id/signatures/:key", DeleteDocumentSignature(db))

	pdfGroup := api.Group("/pdf", auth)
	pdfGroup.Post("/", RenderPDF(pdfSvc))
	pdfGroup.Post("/batch", RenderPDFBatch(pdfSvc))
}
