package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog_backend/internal/models"
	"blog_backend/internal/repository"
	"blog_backend/internal/storage"

	"github.com/google/uuid"
)

// Domain errors for blog flows.
var (
	ErrBlogNotFound = errors.New("blog not found")
	// ErrNotOwner signals a mutation attempt on someone else's post.
	ErrNotOwner = errors.New("not the author of this blog")
)

// maxGalleryImages caps the gallery; extra files are ignored, not rejected.
const maxGalleryImages = 3

// BlogService implements blog CRUD with ownership checks on mutation.
type BlogService struct {
	repo  repository.Blogs
	files storage.FileStore
}

func NewBlogService(repo repository.Blogs, files storage.FileStore) *BlogService {
	return &BlogService{repo: repo, files: files}
}

// Create stores the uploaded images and persists the post. The author email
// comes from the authenticated identity, never from the request body.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (*models.BlogPost, error) {
	if in.Feature.Reader == nil {
		return nil, errors.New("feature image is required")
	}
	feature, err := s.files.Save(ctx, in.Feature.Filename, in.Feature.Reader)
	if err != nil {
		return nil, fmt.Errorf("save feature image: %w", err)
	}

	gallery := in.Gallery
	if len(gallery) > maxGalleryImages {
		gallery = gallery[:maxGalleryImages]
	}
	images := make([]string, 0, len(gallery))
	for _, up := range gallery {
		name, err := s.files.Save(ctx, up.Filename, up.Reader)
		if err != nil {
			return nil, fmt.Errorf("save gallery image: %w", err)
		}
		images = append(images, name)
	}

	post := models.BlogPost{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Content:      in.Content,
		Tags:         in.Tags,
		FeatureImage: feature,
		Images:       images,
		AuthorEmail:  in.AuthorEmail,
		CreatedAt:    time.Now().UTC(),
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if err := s.repo.Insert(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *BlogService) List(ctx context.Context) ([]models.BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *BlogService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrBlogNotFound
	}
	return p, nil
}

// Update applies a partial update. Only the author may update; the ownership
// check mirrors Delete's.
func (s *BlogService) Update(ctx context.Context, id, authorEmail string, in UpdateBlogInput) (*models.BlogPost, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrBlogNotFound
	}
	if p.AuthorEmail != authorEmail {
		return nil, ErrNotOwner
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a post iff the caller is its author.
func (s *BlogService) Delete(ctx context.Context, id, authorEmail string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrBlogNotFound
	}
	if p.AuthorEmail != authorEmail {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
