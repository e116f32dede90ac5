package services

import (
	"context"
	"errors"
	"testing"

	"wtms.com/wtms/internal/constants"
	apperrors "wtms.com/wtms/internal/errors"
	model "wtms.com/wtms/internal/models"
	repository "wtms.com/wtms/internal/repositories"
)

func TestAssignToWorker_CreatesPendingTask(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	service := NewAssignmentService(workerRepo, taskRepo, testLogger())

	ctx := context.Background()
	worker := seedWorker(t, workerRepo, "alice")

	task, err := service.AssignToWorker(ctx, "Fix pump", "Pump 3 is leaking", "2024-03-01", worker.ID)
	if err != nil {
		t.Fatalf("failed to assign task: %v", err)
	}

	if task.ID == 0 {
		t.Error("expected task ID to be set")
	}
	if task.AssignedTo != worker.ID {
		t.Errorf("expected assigned_to %d, got %d", worker.ID, task.AssignedTo)
	}
	if task.Status != constants.StatusPending {
		t.Errorf("expected status %s, got %s", constants.StatusPending, task.Status)
	}
	if task.DateAssigned.IsZero() {
		t.Error("expected date_assigned to be set")
	}
}

func TestAssignToWorker_UnknownWorker(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	service := NewAssignmentService(workerRepo, taskRepo, testLogger())

	ctx := context.Background()

	_, err := service.AssignToWorker(ctx, "Fix pump", "Pump 3 is leaking", "2024-03-01", 42)
	if !errors.Is(err, apperrors.ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}

	var count int64
	db.Model(&model.Task{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no tasks to be created, found %d", count)
	}
}

func TestAssignToRandomWorker_EmptyDirectory(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	service := NewAssignmentService(workerRepo, taskRepo, testLogger())

	_, err := service.AssignToRandomWorker(context.Background(), "Title", "Desc", "2024-03-01")
	if !errors.Is(err, apperrors.ErrNoWorkersRegistered) {
		t.Fatalf("expected ErrNoWorkersRegistered, got %v", err)
	}

	var count int64
	db.Model(&model.Task{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no tasks to be created, found %d", count)
	}
}

func TestAssignToRandomWorker_PicksFromDirectory(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	service := NewAssignmentService(workerRepo, taskRepo, testLogger())

	ctx := context.Background()

	ids := make(map[uint]int)
	for _, name := range []string{"w1", "w2", "w3", "w4"} {
		worker := seedWorker(t, workerRepo, name)
		ids[worker.ID] = 0
	}

	const trials = 100
	for i := 0; i < trials; i++ {
		task, err := service.AssignToRandomWorker(ctx, "Title", "Desc", "2024-03-01")
		if err != nil {
			t.Fatalf("trial %d failed: %v", i, err)
		}
		if _, ok := ids[task.AssignedTo]; !ok {
			t.Fatalf("task assigned to unknown worker %d", task.AssignedTo)
		}
		ids[task.AssignedTo]++
	}

	// with 4 workers and 100 uniform draws every worker should have been hit
	for id, hits := range ids {
		if hits == 0 {
			t.Errorf("worker %d was never selected over %d trials", id, trials)
		}
	}
}

func TestListWorkerTasks_OrderedByDueDate(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	service := NewAssignmentService(workerRepo, taskRepo, testLogger())

	ctx := context.Background()
	worker := seedWorker(t, workerRepo, "bob")

	for _, dueDate := range []string{"2024-05-01", "2024-03-01", "2024-04-01"} {
		if _, err := service.AssignToWorker(ctx, "Title", "Desc", dueDate, worker.ID); err != nil {
			t.Fatalf("failed to assign task: %v", err)
		}
	}

	tasks, err := service.ListWorkerTasks(ctx, worker.ID)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	want := []string{"2024-03-01", "2024-04-01", "2024-05-01"}
	for i, task := range tasks {
		if task.DueDate != want[i] {
			t.Errorf("position %d: expected due date %s, got %s", i, want[i], task.DueDate)
		}
	}
}

func TestListWorkerTasks_Empty(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	service := NewAssignmentService(workerRepo, taskRepo, testLogger())

	tasks, err := service.ListWorkerTasks(context.Background(), 99)
	if err != nil {
		t.Fatalf("listing tasks for unknown worker should not fail: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}
