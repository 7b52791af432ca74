package database_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pathwaycare/intake-api/internal/config"
	"github.com/pathwaycare/intake-api/internal/database"
	"github.com/pathwaycare/intake-api/internal/models"
	"github.com/pathwaycare/intake-api/internal/services"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestWithMariaDB runs the persistence layer against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mariadb:11"
	}

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.EnsureAdminUser(db, "bootpass"); err != nil {
		t.Fatalf("Failed to seed admin account: %v", err)
	}
	// Seeding twice must be a no-op.
	if err := database.EnsureAdminUser(db, "bootpass"); err != nil {
		t.Fatalf("Second admin seed failed: %v", err)
	}
	var adminCount int64
	if err := db.Model(&models.User{}).Where("username = ?", models.ProtectedUsername).
		Count(&adminCount).Error; err != nil {
		t.Fatalf("Failed to count admin accounts: %v", err)
	}
	if adminCount != 1 {
		t.Errorf("Expected exactly one admin account, got %d", adminCount)
	}

	admin, err := services.AuthenticateUser(db, models.ProtectedUsername, "bootpass")
	if err != nil {
		t.Fatalf("Failed to authenticate seeded admin: %v", err)
	}
	actor := services.CurrentUser{ID: admin.ID, Role: admin.Role}

	transactionDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	form, err := services.CreateIntakeForm(db, &models.IntakeForm{
		YourName:           "Dana Worker",
		TransactionDate:    &transactionDate,
		TypeOfTransaction:  "Intake",
		CaseNumber:         "SM-1042",
		Name:               "Jordan Client",
		DateOfBirth:        &transactionDate,
		Gender:             "Female",
		ReasonForPlacement: "Neglect",
		LevelOfCare:        "Level 2",
	}, actor)
	if err != nil {
		t.Fatalf("Failed to create intake form: %v", err)
	}

	documents, err := services.GenerateDocuments(db, form.ID, actor)
	if err != nil {
		t.Fatalf("Failed to generate documents: %v", err)
	}
	if len(documents) == 0 {
		t.Fatal("Expected generated documents")
	}

	byCategory, err := services.GetDocumentsByCategory(db, models.CategoryShelterBed, form.ID)
	if err != nil {
		t.Fatalf("Failed to query by category: %v", err)
	}
	for _, doc := range byCategory {
		if !doc.InCategory(models.CategoryShelterBed) {
			t.Errorf("Document %q does not belong to the queried category", doc.Title)
		}
	}

	result := services.HealthCheck(cfg, db)
	if result.Status != "healthy" {
		t.Errorf("Expected healthy status, got %s (%s)", result.Status, result.Error)
	}
}
