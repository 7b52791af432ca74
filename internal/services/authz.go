package services

import (
	"github.com/pathwaycare/intake-api/internal/models"
)

// CurrentUser is the acting principal resolved by the auth middleware.
type CurrentUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// IsAdmin reports whether the actor holds the admin role.
func (u CurrentUser) IsAdmin() bool {
	return u.Role == models.RoleAdmin
}

// CanAccess is the ownership predicate used by every per-resource operation:
// admins may touch anything, everyone else only records they created.
func CanAccess(actor CurrentUser, ownerID string) bool {
	return actor.IsAdmin() || actor.ID == ownerID
}

// CanDeleteDocument gates permanent document deletion. Form-derived documents
// are admin-only; standalone documents may also be deleted by their owner.
func CanDeleteDocument(actor CurrentUser, doc *models.Document) bool {
	if actor.IsAdmin() {
		return true
	}
	return doc.StandAlone && doc.CreatedBy == actor.ID
}
