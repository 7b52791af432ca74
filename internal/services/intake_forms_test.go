package services_test

import (
	"testing"

	"github.com/pathwaycare/intake-api/internal/models"
	"github.com/pathwaycare/intake-api/internal/services"
	"github.com/pathwaycare/intake-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntakeFormRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	_, actor := createTestUser(t, db, "worker", models.RoleSocialWorker)

	form := newTestForm()
	form.YourName = ""
	_, err := services.CreateIntakeForm(db, form, actor)
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "Your name is required", custom.Message)

	form = newTestForm()
	form.Gender = "Unknown"
	_, err = services.CreateIntakeForm(db, form, actor)
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeValidation, custom.Type)
}

func TestCreateIntakeFormDefaults(t *testing.T) {
	db := setupTestDB(t)
	_, actor := createTestUser(t, db, "worker", models.RoleSocialWorker)

	form := createTestForm(t, db, actor)
	assert.Equal(t, models.StatusInProgress, form.Status)
	assert.Equal(t, actor.ID, form.CreatedBy)
	assert.False(t, form.DateSubmitted.IsZero())
	assert.Nil(t, form.UpdatedAt)
}

func TestListIntakeFormsScopedByOwner(t *testing.T) {
	db := setupTestDB(t)
	_, worker := createTestUser(t, db, "worker", models.RoleSocialWorker)
	_, other := createTestUser(t, db, "other", models.RoleCounsellor)
	_, admin := createTestUser(t, db, "boss", models.RoleAdmin)
	createTestForm(t, db, worker)
	createTestForm(t, db, other)

	mine, err := services.ListIntakeForms(db, worker)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := services.ListIntakeForms(db, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetIntakeFormOwnership(t *testing.T) {
	db := setupTestDB(t)
	_, worker := createTestUser(t, db, "worker", models.RoleSocialWorker)
	_, other := createTestUser(t, db, "other", models.RoleCounsellor)
	_, admin := createTestUser(t, db, "boss", models.RoleAdmin)
	form := createTestForm(t, db, worker)

	_, err := services.GetIntakeForm(db, form.ID, other)
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeForbidden, custom.Type)

	_, err = services.GetIntakeForm(db, form.ID, admin)
	assert.NoError(t, err)
}

func TestUpdateIntakeFormPreservesWorkflowState(t *testing.T) {
	db := setupTestDB(t)
	_, actor := createTestUser(t, db, "worker", models.RoleSocialWorker)
	form := createTestForm(t, db, actor)

	_, err := services.UpdateFormStatus(db, form.ID, models.StatusPending, actor)
	require.NoError(t, err)

	input := newTestForm()
	input.Name = "Jordan Renamed"
	input.Status = models.StatusCompleted // must be ignored
	updated, err := services.UpdateIntakeForm(db, form.ID, input, actor)
	require.NoError(t, err)

	assert.Equal(t, "Jordan Renamed", updated.Name)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Equal(t, actor.ID, updated.UpdatedBy)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdateFormStatus(t *testing.T) {
	db := setupTestDB(t)
	_, actor := createTestUser(t, db, "worker", models.RoleSocialWorker)
	form := createTestForm(t, db, actor)

	updated, err := services.UpdateFormStatus(db, form.ID, models.StatusNeedsReview, actor)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNeedsReview, updated.Status)
	assert.True(t, updated.LastStatusUpdate.After(form.LastStatusUpdate))

	_, err = services.UpdateFormStatus(db, form.ID, "Done", actor)
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeValidation, custom.Type)

	_, err = services.UpdateFormStatus(db, form.ID, models.StatusArchived, actor)
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeValidation, custom.Type, "Archived is only reachable via the archive toggle")
}

func TestToggleFormArchive(t *testing.T) {
	db := setupTestDB(t)
	_, actor := createTestUser(t, db, "worker", models.RoleSocialWorker)
	form := createTestForm(t, db, actor)

	archived, err := services.ToggleFormArchive(db, form.ID, true, actor)
	require.NoError(t, err)
	assert.True(t, archived.Archived)
	assert.Equal(t, models.StatusArchived, archived.Status)

	restored, err := services.ToggleFormArchive(db, form.ID, false, actor)
	require.NoError(t, err)
	assert.False(t, restored.Archived)
	assert.Equal(t, models.StatusInProgress, restored.Status)
}

func TestPermanentlyDeleteIntakeFormAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	_, worker := createTestUser(t, db, "worker", models.RoleSocialWorker)
	_, admin := createTestUser(t, db, "boss", models.RoleAdmin)
	form := createTestForm(t, db, worker)

	err := services.PermanentlyDeleteIntakeForm(db, form.ID, worker)
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeForbidden, custom.Type)

	require.NoError(t, services.PermanentlyDeleteIntakeForm(db, form.ID, admin))
	_, err = services.GetIntakeForm(db, form.ID, admin)
	assert.True(t, types.IsNotFound(err))
}

func TestBulkDeleteIntakeFormsAllOrNothing(t *testing.T) {
	db := setupTestDB(t)
	_, worker := createTestUser(t, db, "worker", models.RoleSocialWorker)
	_, admin := createTestUser(t, db, "boss", models.RoleAdmin)
	a := createTestForm(t, db, worker)
	b := createTestForm(t, db, worker)

	_, err := services.BulkDeleteIntakeForms(db, []string{a.ID, b.ID}, worker)
	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, types.ErrTypeForbidden, custom.Type)

	deleted, err := services.BulkDeleteIntakeForms(db, []string{a.ID, b.ID}, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
