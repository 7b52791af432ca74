package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pathwaycare/intake-api/internal/config"
	"github.com/pathwaycare/intake-api/internal/services"
	"github.com/pathwaycare/intake-api/internal/types"
	"github.com/pathwaycare/intake-api/internal/utils"
	"gorm.io/gorm"
)

// Register creates a staff account. Admin only.
func Register(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input services.RegisterInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		user, err := services.RegisterUser(db, input)
		if err != nil {
			return err
		}
		return utils.SendCreated(c, user)
	}
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates credentials and issues a bearer token.
func Login(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input loginInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		user, err := services.AuthenticateUser(db, input.Username, input.Password)
		if err != nil {
			return err
		}
		token, err := services.IssueToken(cfg.JWTSecret, cfg.JWTExpire, user)
		if err != nil {
			return err
		}
		return utils.SendToken(c, token, user)
	}
}

// Me returns the authenticated user's own record.
func Me(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := services.GetUser(db, currentUser(c).ID)
		if err != nil {
			return err
		}
		return utils.SendData(c, user)
	}
}

// ListUsers returns every staff account. Admin only.
func ListUsers(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := services.ListUsers(db)
		if err != nil {
			return err
		}
		return utils.SendList(c, users, int64(len(users)))
	}
}

type roleInput struct {
	Role string `json:"role"`
}

// UpdateUserRole changes a user's role. Admin only; the protected admin
// account is refused.
func UpdateUserRole(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input roleInput
		if err := c.BodyParser(&input); err != nil {
			return types.NewValidationError("Invalid request body")
		}
		user, err := services.UpdateUserRole(db, c.Params("id"), input.Role)
		if err != nil {
			return err
		}
		return utils.SendData(c, user)
	}
}

// CanDeleteUser reports deletion preconditions for a user. Admin only.
func CanDeleteUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		check, err := services.CanDeleteUser(db, c.Params("id"))
		if err != nil {
			return err
		}
		return utils.SendData(c, check)
	}
}

// DeleteUser removes a user, reassigning owned records to the user named by
// the reassignTo query parameter when present. Admin only.
func DeleteUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := services.DeleteUser(db, c.Params("id"), c.Query("reassignTo")); err != nil {
			return err
		}
		return utils.SendMessage(c, "User deleted successfully")
	}
}
