package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pathwaycare/intake-api/internal/models"
	"github.com/pathwaycare/intake-api/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// isDuplicateKey recognizes unique-constraint violations across the supported
// drivers; not every dialector translates them to gorm.ErrDuplicatedKey.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // mysql/mariadb
		strings.Contains(msg, "duplicate key") || // postgres, sqlserver
		strings.Contains(msg, "UNIQUE constraint") // sqlite
}

// RegisterInput is the payload for creating a staff account.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// RegisterUser creates a new user with a hashed password.
func RegisterUser(db *gorm.DB, input RegisterInput) (*models.User, error) {
	if input.Username == "" || input.Password == "" || input.Name == "" {
		return nil, types.NewValidationError("Please provide username, password and name")
	}
	if input.Role == "" {
		input.Role = models.RoleSocialWorker
	}
	if !models.ValidRole(input.Role) {
		return nil, types.NewValidationError(fmt.Sprintf("Invalid role: %s", input.Role))
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, types.NewConflictError("User with this username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: input.Username,
		Name:     input.Name,
		Role:     input.Role,
		Password: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		// The pre-check races with concurrent registrations; the unique index
		// is the backstop and still answers with the conflict taxonomy.
		if isDuplicateKey(err) {
			return nil, types.NewConflictError("User with this username already exists")
		}
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks credentials and returns the matching user.
func AuthenticateUser(db *gorm.DB, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, types.NewValidationError("Please provide a username and password")
	}
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewUnauthenticatedError("Invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, types.NewUnauthenticatedError("Invalid credentials")
	}
	return &user, nil
}

// GetUser fetches one user by id.
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every user account.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole changes a user's role. The protected admin account is
// immutable regardless of caller privilege.
func UpdateUserRole(db *gorm.DB, id, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, types.NewValidationError(fmt.Sprintf("Invalid role: %s", role))
	}
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}
	if user.IsProtected() {
		return nil, types.NewForbiddenError("The admin account role cannot be changed")
	}
	if err := db.Model(user).Update("role", role).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeletionCheck reports whether a user can be removed and what stands in the
// way: owned records must be reassigned first.
type DeletionCheck struct {
	CanDelete            bool  `json:"canDelete"`
	RequiresReassignment bool  `json:"requiresReassignment"`
	IntakeFormCount      int64 `json:"intakeFormCount"`
	DocumentCount        int64 `json:"documentCount"`
}

func countOwnedRecords(db *gorm.DB, userID string) (forms, documents int64, err error) {
	if err = db.Model(&models.IntakeForm{}).Where("created_by = ?", userID).Count(&forms).Error; err != nil {
		return
	}
	err = db.Model(&models.Document{}).Where("created_by = ?", userID).Count(&documents).Error
	return
}

// CanDeleteUser evaluates deletion preconditions without changing anything.
func CanDeleteUser(db *gorm.DB, id string) (*DeletionCheck, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}
	if user.IsProtected() {
		return &DeletionCheck{CanDelete: false}, nil
	}
	forms, documents, err := countOwnedRecords(db, id)
	if err != nil {
		return nil, err
	}
	return &DeletionCheck{
		CanDelete:            true,
		RequiresReassignment: forms+documents > 0,
		IntakeFormCount:      forms,
		DocumentCount:        documents,
	}, nil
}

// DeleteUser removes a user account. Deletion never cascades: when the user
// still owns intake forms or documents, every owned record is re-pointed to
// reassignTo before the account is removed, and the call fails with
// ReassignmentRequiredError when no target is supplied.
func DeleteUser(db *gorm.DB, id, reassignTo string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		user, err := GetUser(tx, id)
		if err != nil {
			return err
		}
		if user.IsProtected() {
			return types.NewForbiddenError("The admin account cannot be deleted")
		}

		forms, documents, err := countOwnedRecords(tx, id)
		if err != nil {
			return err
		}

		if forms+documents > 0 {
			if reassignTo == "" {
				return &types.ReassignmentRequiredError{
					IntakeFormCount: forms,
					DocumentCount:   documents,
				}
			}
			target, err := GetUser(tx, reassignTo)
			if err != nil {
				if types.IsNotFound(err) {
					return types.NewNotFoundError("Reassignment target user not found")
				}
				return err
			}
			if err := tx.Model(&models.IntakeForm{}).
				Where("created_by = ?", user.ID).
				Update("created_by", target.ID).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Document{}).
				Where("created_by = ?", user.ID).
				Update("created_by", target.ID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(user).Error
	})
}
