package repository

import (
	"blog_backend/internal/models"
	"context"
	"database/sql"
)

// Users is the credential store: point lookups by email, inserts on signup.
type Users interface {
	Create(ctx context.Context, name, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Blogs interface {
	Insert(ctx context.Context, p models.BlogPost) error
	List(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	Update(ctx context.Context, p models.BlogPost) error
	Delete(ctx context.Context, id string) error
}

type Contacts interface {
	Insert(ctx context.Context, m models.ContactMessage) error
}

type Repository struct {
	Users    Users
	Blogs    Blogs
	Contacts Contacts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Blogs:    NewBlogRepository(db),
		Contacts: NewContactRepository(db),
	}
}
