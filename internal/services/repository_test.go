package services

import (
	"errors"
	"testing"

	"github.com/agora-dev/teko-board/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Partner{},
		&models.Worker{},
		&models.Project{},
		&models.Assignment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedWorkerAndProject(t *testing.T, db *gorm.DB) (workerID, projectID string) {
	t.Helper()
	user := models.User{Username: "taro", Name: "山田太郎", Role: "member", AuthType: "local", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	worker := models.Worker{UserID: user.ID, WorkerType: models.WorkerTypeInternal, IsActive: true}
	if err := db.Create(&worker).Error; err != nil {
		t.Fatalf("failed to seed worker: %v", err)
	}
	project := models.Project{ProjectCode: "PRJ-001", Name: "駅前サイン改修", Status: models.ProjectStatusContracted}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return worker.ID, project.ID
}

func TestAssignmentService_CreateThenGet(t *testing.T) {
	db := newTestDB(t)
	workerID, projectID := seedWorkerAndProject(t, db)
	svc := NewAssignmentService(db)

	created, err := svc.Create(&CreateAssignmentRequest{
		WorkerID:  workerID,
		ProjectID: projectID,
		Date:      "2025-06-15",
		Notes:     "   ",
	}, "")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	got, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID() returned error: %v", err)
	}

	if got.WorkerID != workerID || got.ProjectID != projectID {
		t.Errorf("worker/project = %q/%q, expected %q/%q", got.WorkerID, got.ProjectID, workerID, projectID)
	}
	if got.Date != "2025-06-15" {
		t.Errorf("date = %q, expected %q", got.Date, "2025-06-15")
	}
	if got.Status != models.AssignmentStatusScheduled {
		t.Errorf("status = %q, expected %q", got.Status, models.AssignmentStatusScheduled)
	}
	if got.StartTime != nil || got.EndTime != nil {
		t.Error("unset times should be stored as NULL")
	}
	if got.Notes != nil {
		t.Errorf("blank notes should be normalized to NULL, got %q", *got.Notes)
	}
	if got.CreatedBy != nil {
		t.Errorf("empty created_by should be NULL, got %q", *got.CreatedBy)
	}
}

func TestAssignmentService_ListByDate_StartTimeOrder(t *testing.T) {
	db := newTestDB(t)
	workerID, projectID := seedWorkerAndProject(t, db)
	svc := NewAssignmentService(db)

	// Created out of order on purpose
	for _, start := range []string{"13:00", "09:00"} {
		_, err := svc.Create(&CreateAssignmentRequest{
			WorkerID:  workerID,
			ProjectID: projectID,
			Date:      "2025-06-15",
			StartTime: start,
		}, "")
		if err != nil {
			t.Fatalf("Create(%s) returned error: %v", start, err)
		}
	}
	// A row on another day must not leak in
	if _, err := svc.Create(&CreateAssignmentRequest{
		WorkerID:  workerID,
		ProjectID: projectID,
		Date:      "2025-06-16",
	}, ""); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	list, err := svc.ListByDate("2025-06-15")
	if err != nil {
		t.Fatalf("ListByDate() returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(list))
	}
	for _, a := range list {
		if a.Date != "2025-06-15" {
			t.Errorf("assignment %s has date %q, expected 2025-06-15", a.ID, a.Date)
		}
	}
	if list[0].StartTime == nil || *list[0].StartTime != "09:00" {
		t.Error("09:00 should sort before 13:00")
	}
	if list[1].StartTime == nil || *list[1].StartTime != "13:00" {
		t.Error("13:00 should sort after 09:00")
	}
}

func TestAssignmentService_UpdateStatus_NoTransitionConstraint(t *testing.T) {
	db := newTestDB(t)
	workerID, projectID := seedWorkerAndProject(t, db)
	svc := NewAssignmentService(db)

	created, err := svc.Create(&CreateAssignmentRequest{
		WorkerID:  workerID,
		ProjectID: projectID,
		Date:      "2025-06-15",
	}, "")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	// Any label can follow any other, including walking backwards
	for _, status := range []string{
		models.AssignmentStatusCompleted,
		models.AssignmentStatusScheduled,
		models.AssignmentStatusCancelled,
		models.AssignmentStatusInProgress,
	} {
		if _, err := svc.UpdateStatus(created.ID, status); err != nil {
			t.Fatalf("UpdateStatus(%s) returned error: %v", status, err)
		}
		got, err := svc.GetByID(created.ID)
		if err != nil {
			t.Fatalf("GetByID() returned error: %v", err)
		}
		if got.Status != status {
			t.Errorf("status = %q, expected %q", got.Status, status)
		}
	}

	if _, err := svc.UpdateStatus(created.ID, "done"); !errors.Is(err, ErrValidationRejected) {
		t.Errorf("unknown label should be rejected with ErrValidationRejected, got %v", err)
	}
}

func TestAssignmentService_DeleteThenGet_NotFound(t *testing.T) {
	db := newTestDB(t)
	workerID, projectID := seedWorkerAndProject(t, db)
	svc := NewAssignmentService(db)

	created, err := svc.Create(&CreateAssignmentRequest{
		WorkerID:  workerID,
		ProjectID: projectID,
		Date:      "2025-06-15",
	}, "")
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	deleted, err := svc.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}
	if deleted.Date != "2025-06-15" {
		t.Errorf("deleted row date = %q, expected 2025-06-15", deleted.Date)
	}

	if _, err := svc.GetByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete should return ErrNotFound, got %v", err)
	}
}

func TestAssignmentService_WorkerHistory_Split(t *testing.T) {
	db := newTestDB(t)
	workerID, projectID := seedWorkerAndProject(t, db)
	svc := NewAssignmentService(db)

	for _, date := range []string{"2025-06-10", "2025-06-15", "2025-06-20"} {
		if _, err := svc.Create(&CreateAssignmentRequest{
			WorkerID:  workerID,
			ProjectID: projectID,
			Date:      date,
		}, ""); err != nil {
			t.Fatalf("Create(%s) returned error: %v", date, err)
		}
	}

	split, err := svc.WorkerHistory(workerID, "2025-06-15")
	if err != nil {
		t.Fatalf("WorkerHistory() returned error: %v", err)
	}

	if len(split.Upcoming) != 2 {
		t.Errorf("expected 2 upcoming, got %d", len(split.Upcoming))
	}
	if len(split.Past) != 1 {
		t.Errorf("expected 1 past, got %d", len(split.Past))
	}
	if len(split.Today) != 1 || split.Today[0].Date != "2025-06-15" {
		t.Error("today should hold exactly the 2025-06-15 row")
	}

	// ListByWorker orders newest first; the split keeps that order
	if split.Upcoming[0].Date != "2025-06-20" || split.Upcoming[1].Date != "2025-06-15" {
		t.Errorf("upcoming order = %q,%q, expected 2025-06-20,2025-06-15",
			split.Upcoming[0].Date, split.Upcoming[1].Date)
	}
	if split.Past[0].Date != "2025-06-10" {
		t.Errorf("past[0] = %q, expected 2025-06-10", split.Past[0].Date)
	}
}

func TestAssignmentService_ProjectHistory_Split(t *testing.T) {
	db := newTestDB(t)
	workerID, projectID := seedWorkerAndProject(t, db)
	svc := NewAssignmentService(db)

	for _, date := range []string{"2025-06-01", "2025-07-01"} {
		if _, err := svc.Create(&CreateAssignmentRequest{
			WorkerID:  workerID,
			ProjectID: projectID,
			Date:      date,
		}, ""); err != nil {
			t.Fatalf("Create(%s) returned error: %v", date, err)
		}
	}

	split, err := svc.ProjectHistory(projectID, "2025-06-15")
	if err != nil {
		t.Fatalf("ProjectHistory() returned error: %v", err)
	}

	if len(split.Upcoming) != 1 || split.Upcoming[0].Date != "2025-07-01" {
		t.Error("expected only the 2025-07-01 row in upcoming")
	}
	if len(split.Past) != 1 || split.Past[0].Date != "2025-06-01" {
		t.Error("expected only the 2025-06-01 row in past")
	}
	if len(split.Today) != 0 {
		t.Errorf("expected empty today, got %d rows", len(split.Today))
	}
}
