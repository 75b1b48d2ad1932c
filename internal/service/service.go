package service

import (
	"context"
	"io"

	"blog_backend/internal/config"
	"blog_backend/internal/logger"
	"blog_backend/internal/mailer"
	"blog_backend/internal/models"
	"blog_backend/internal/repository"
	"blog_backend/internal/storage"
)

type Authorization interface {
	SignUp(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// FileUpload is one incoming multipart file, decoupled from the HTTP layer.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

type CreateBlogInput struct {
	Title       string
	Content     string
	Tags        []string
	AuthorEmail string
	Feature     FileUpload
	Gallery     []FileUpload
}

// UpdateBlogInput carries partial changes; nil fields are left untouched.
type UpdateBlogInput struct {
	Title   *string
	Content *string
	Tags    *[]string
}

type Blogs interface {
	Create(ctx context.Context, in CreateBlogInput) (*models.BlogPost, error)
	List(ctx context.Context) ([]models.BlogPost, error)
	Get(ctx context.Context, id string) (*models.BlogPost, error)
	Update(ctx context.Context, id, authorEmail string, in UpdateBlogInput) (*models.BlogPost, error)
	Delete(ctx context.Context, id, authorEmail string) error
}

type ContactInput struct {
	Name          string
	Email         string
	ContactNumber string
	Message       string
}

type Contact interface {
	Submit(ctx context.Context, in ContactInput) error
}

type Service struct {
	Authorization
	Blogs
	Contact
}

// NewService wires the repository layer, file store and mailer into
// concrete services.
func NewService(repos *repository.Repository, files storage.FileStore, sender mailer.Sender, renderer *mailer.Renderer, cfg *config.Config, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg.Auth),
		Blogs:         NewBlogService(repos.Blogs, files),
		Contact:       NewContactService(repos.Contacts, sender, renderer, cfg.Mail, log),
	}
}
