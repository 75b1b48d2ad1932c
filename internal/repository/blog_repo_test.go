package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"blog_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockBlogRepo(t *testing.T) (*BlogRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewBlogRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func samplePost() models.BlogPost {
	return models.BlogPost{
		ID:           "b1",
		Title:        "First",
		Content:      "Hello",
		Tags:         []string{"go", "web"},
		FeatureImage: "feat.png",
		Images:       []string{"g1.png"},
		AuthorEmail:  "a@x.com",
		CreatedAt:    time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func blogColumns() []string {
	return []string{"id", "title", "content", "tags", "feature_image", "images", "author_email", "created_at"}
}

func TestBlogRepository_Insert(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	p := samplePost()
	mock.ExpectExec(regexp.QuoteMeta(insertBlogSQL)).
		WithArgs("b1", "First", "Hello", `["go","web"]`, "feat.png", `["g1.png"]`, "a@x.com", "2025-08-01 12:00:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), p); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
}

func TestBlogRepository_Insert_NilSlicesEncodeAsEmptyLists(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	p := samplePost()
	p.Tags = nil
	p.Images = nil
	mock.ExpectExec(regexp.QuoteMeta(insertBlogSQL)).
		WithArgs("b1", "First", "Hello", `[]`, "feat.png", `[]`, "a@x.com", "2025-08-01 12:00:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), p); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
}

func TestBlogRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockBlogRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows(blogColumns()).
			AddRow("b1", "First", "Hello", `["go","web"]`, "feat.png", `["g1.png"]`, "a@x.com", "2025-08-01 12:00:00")
		mock.ExpectQuery(regexp.QuoteMeta(selectBlogByIDSQL)).
			WithArgs("b1").
			WillReturnRows(rows)

		p, err := repo.GetByID(context.Background(), "b1")
		if err != nil {
			t.Fatalf("GetByID returned error: %v", err)
		}
		if p == nil || p.ID != "b1" || p.AuthorEmail != "a@x.com" {
			t.Fatalf("unexpected post: %+v", p)
		}
		if len(p.Tags) != 2 || p.Tags[1] != "web" {
			t.Fatalf("tags not decoded: %v", p.Tags)
		}
		if !p.CreatedAt.Equal(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)) {
			t.Fatalf("created_at not decoded: %v", p.CreatedAt)
		}
	})

	t.Run("not found returns nil nil", func(t *testing.T) {
		repo, mock, cleanup := newMockBlogRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectBlogByIDSQL)).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.GetByID(context.Background(), "missing")
		if err != nil {
			t.Fatalf("expected nil error for missing post, got: %v", err)
		}
		if p != nil {
			t.Fatalf("expected nil post, got: %+v", p)
		}
	})
}

func TestBlogRepository_List(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows(blogColumns()).
		AddRow("b2", "Second", "World", `[]`, "f2.png", `[]`, "b@x.com", "2025-08-02 09:00:00").
		AddRow("b1", "First", "Hello", `["go"]`, "f1.png", `["g1.png"]`, "a@x.com", "2025-08-01 12:00:00")
	mock.ExpectQuery(regexp.QuoteMeta(selectBlogsSQL)).WillReturnRows(rows)

	posts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "b2" || posts[1].ID != "b1" {
		t.Fatalf("unexpected order: %s, %s", posts[0].ID, posts[1].ID)
	}
	if len(posts[1].Images) != 1 {
		t.Fatalf("images not decoded: %v", posts[1].Images)
	}
}

func TestBlogRepository_Update(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	p := samplePost()
	p.Title = "Renamed"
	mock.ExpectExec(regexp.QuoteMeta(updateBlogSQL)).
		WithArgs("Renamed", "Hello", `["go","web"]`, "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), p); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
}

func TestBlogRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockBlogRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteBlogSQL)).
			WithArgs("b1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Delete(context.Background(), "b1"); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, cleanup := newMockBlogRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteBlogSQL)).
			WithArgs("b1").
			WillReturnError(errors.New("db down"))

		if err := repo.Delete(context.Background(), "b1"); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}
