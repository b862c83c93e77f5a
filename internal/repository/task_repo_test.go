package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockTaskRepo(t *testing.T) (*TaskSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewTaskSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestTaskSQLite_Create(t *testing.T) {
	repo, mock, cleanup := newMockTaskRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertTaskSQL)).
		WithArgs(sqlmock.AnyArg(), 7, "Buy milk", "2 liters", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	task, err := repo.Create(context.Background(), 7, "Buy milk", "2 liters")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected generated task id")
	}
	if task.OwnerID != 7 {
		t.Fatalf("owner id: want 7, got %d", task.OwnerID)
	}
	if task.IsComplete {
		t.Fatal("new task must not be complete")
	}
	if task.Title != "Buy milk" || task.Description != "2 liters" {
		t.Fatalf("unexpected task fields: %+v", task)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestTaskSQLite_Create_ExecError(t *testing.T) {
	repo, mock, cleanup := newMockTaskRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertTaskSQL)).
		WithArgs(sqlmock.AnyArg(), 7, "Buy milk", "", false, sqlmock.AnyArg()).
		WillReturnError(errors.New("db exec failed"))

	if _, err := repo.Create(context.Background(), 7, "Buy milk", ""); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestTaskSQLite_ListByOwner(t *testing.T) {
	now := time.Now().UTC()

	t.Run("returns owner rows in order", func(t *testing.T) {
		repo, mock, cleanup := newMockTaskRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "description", "is_complete", "created_at"}).
			AddRow("t1", 7, "Buy milk", "", false, now).
			AddRow("t2", 7, "Walk dog", "evening", true, now)
		mock.ExpectQuery(regexp.QuoteMeta(selectTasksByOwnerSQL)).
			WithArgs(7).
			WillReturnRows(rows)

		tasks, err := repo.ListByOwner(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}
		if tasks[0].ID != "t1" || tasks[1].ID != "t2" {
			t.Fatalf("unexpected order: %+v", tasks)
		}
		if !tasks[1].IsComplete {
			t.Fatal("expected second task complete")
		}
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		repo, mock, cleanup := newMockTaskRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectTasksByOwnerSQL)).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "title", "description", "is_complete", "created_at"}))

		tasks, err := repo.ListByOwner(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tasks == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(tasks) != 0 {
			t.Fatalf("expected no tasks, got %d", len(tasks))
		}
	})
}

func TestTaskSQLite_Update(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success returns updated record", func(t *testing.T) {
		repo, mock, cleanup := newMockTaskRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateTaskSQL)).
			WithArgs("Buy milk", "2 liters", true, "t1", 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(selectTaskByIDSQL)).
			WithArgs("t1", 7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "title", "description", "is_complete", "created_at"}).
				AddRow("t1", 7, "Buy milk", "2 liters", true, now))

		task, err := repo.Update(context.Background(), "t1", 7, "Buy milk", "2 liters", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != "t1" || !task.IsComplete || task.Description != "2 liters" {
			t.Fatalf("unexpected task: %+v", task)
		}
	})

	t.Run("zero rows affected means not found", func(t *testing.T) {
		repo, mock, cleanup := newMockTaskRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateTaskSQL)).
			WithArgs("Buy milk", "", false, "t1", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), "t1", 99, "Buy milk", "", false)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestTaskSQLite_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockTaskRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteTaskSQL)).
			WithArgs("t1", 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Delete(context.Background(), "t1", 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero rows affected means not found", func(t *testing.T) {
		repo, mock, cleanup := newMockTaskRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteTaskSQL)).
			WithArgs("t1", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "t1", 99)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
