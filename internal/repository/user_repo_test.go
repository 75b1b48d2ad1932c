package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name           string
		userName       string
		email          string
		passwordHash   string
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int
		wantErr        bool
		errContainsStr string
	}{
		{
			name:         "success",
			userName:     "Alice",
			email:        "alice@x.com",
			passwordHash: "h123",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Alice", "alice@x.com", "h123").
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name:         "exec error",
			userName:     "Bob",
			email:        "bob@x.com",
			passwordHash: "h456",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Bob", "bob@x.com", "h456").
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr:        true,
			errContainsStr: "insert user",
		},
		{
			name:         "last insert id error",
			userName:     "Carol",
			email:        "carol@x.com",
			passwordHash: "h789",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Carol", "carol@x.com", "h789").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			wantErr:        true,
			errContainsStr: "get last insert id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()
			tc.mockExpect(mock)

			id, err := repo.Create(context.Background(), tc.userName, tc.email, tc.passwordHash)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tc.errContainsStr != "" && !strings.Contains(err.Error(), tc.errContainsStr) {
					t.Fatalf("error %q does not contain %q", err, tc.errContainsStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if id != tc.wantID {
				t.Fatalf("id: got %d, want %d", id, tc.wantID)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
			AddRow(7, "Diana", "d@x.com", "hash7")
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
			WithArgs("d@x.com").
			WillReturnRows(rows)

		u, err := repo.GetByEmail(context.Background(), "d@x.com")
		if err != nil {
			t.Fatalf("GetByEmail returned error: %v", err)
		}
		if u == nil || u.ID != 7 || u.Name != "Diana" || u.PasswordHash != "hash7" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("not found returns nil nil", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
			WithArgs("ghost@x.com").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.GetByEmail(context.Background(), "ghost@x.com")
		if err != nil {
			t.Fatalf("expected nil error for missing user, got: %v", err)
		}
		if u != nil {
			t.Fatalf("expected nil user, got: %+v", u)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
			WithArgs("e@x.com").
			WillReturnError(errors.New("query failed"))

		if _, err := repo.GetByEmail(context.Background(), "e@x.com"); err == nil {
			t.Fatalf("expected query error, got nil")
		}
	})
}
