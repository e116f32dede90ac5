package services

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "wtms.com/wtms/internal/models"
	repository "wtms.com/wtms/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Worker{}, &model.Task{}, &model.Submission{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

// seedWorker inserts a worker directly through the repository, bypassing
// registration validation.
func seedWorker(t *testing.T, repo *repository.WorkerRepository, name string) *model.Worker {
	t.Helper()

	worker := &model.Worker{
		FullName:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "irrelevant",
	}
	if err := repo.Create(context.Background(), worker); err != nil {
		t.Fatalf("failed to seed worker: %v", err)
	}

	return worker
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

const testBcryptCost = bcrypt.MinCost
