package repository

import (
	"blog_backend/internal/models"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

var _ Blogs = (*BlogRepository)(nil)

const (
	insertBlogSQL = `INSERT INTO blog_posts (id, title, content, tags, feature_image, images, author_email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectBlogsSQL = `SELECT id, title, content, tags, feature_image, images, author_email, created_at
		FROM blog_posts ORDER BY created_at DESC`
	selectBlogByIDSQL = `SELECT id, title, content, tags, feature_image, images, author_email, created_at
		FROM blog_posts WHERE id = ?`
	updateBlogSQL = `UPDATE blog_posts SET title = ?, content = ?, tags = ? WHERE id = ?`
	deleteBlogSQL = `DELETE FROM blog_posts WHERE id = ?`
)

const timestampLayout = "2006-01-02 15:04:05"

// marshalStrings encodes a string slice as JSON for a TEXT column.
// nil encodes as an empty list so readers never see SQL NULL.
func marshalStrings(ss []string) (string, error) {
	if ss == nil {
		ss = []string{}
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return "", fmt.Errorf("marshal string list: %w", err)
	}
	return string(b), nil
}

func unmarshalStrings(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var ss []string
	if err := json.Unmarshal([]byte(s), &ss); err != nil {
		return nil, fmt.Errorf("unmarshal string list: %w", err)
	}
	return ss, nil
}

// Insert stores a new post.
func (r *BlogRepository) Insert(ctx context.Context, p models.BlogPost) error {
	tags, err := marshalStrings(p.Tags)
	if err != nil {
		return err
	}
	images, err := marshalStrings(p.Images)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertBlogSQL,
		p.ID,
		p.Title,
		p.Content,
		tags,
		p.FeatureImage,
		images,
		p.AuthorEmail,
		p.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("insert blog post %q: %w", p.ID, err)
	}
	return nil
}

// List returns all posts, newest first.
func (r *BlogRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, selectBlogsSQL)
	if err != nil {
		return nil, fmt.Errorf("select blog posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.BlogPost, 0, 16)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog posts: %w", err)
	}
	return out, nil
}

// GetByID fetches a single post. Returns (nil, nil) if not found.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, selectBlogByIDSQL, id)
	p, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select blog post %q: %w", id, err)
	}
	return &p, nil
}

// Update rewrites the mutable columns (title, content, tags).
func (r *BlogRepository) Update(ctx context.Context, p models.BlogPost) error {
	tags, err := marshalStrings(p.Tags)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, updateBlogSQL, p.Title, p.Content, tags, p.ID); err != nil {
		return fmt.Errorf("update blog post %q: %w", p.ID, err)
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteBlogSQL, id); err != nil {
		return fmt.Errorf("delete blog post %q: %w", id, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBlogPost(s scanner) (models.BlogPost, error) {
	var (
		p         models.BlogPost
		tagsStr   string
		imagesStr string
		createdAt string
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Content, &tagsStr, &p.FeatureImage, &imagesStr, &p.AuthorEmail, &createdAt); err != nil {
		return models.BlogPost{}, err
	}
	tags, err := unmarshalStrings(tagsStr)
	if err != nil {
		return models.BlogPost{}, err
	}
	images, err := unmarshalStrings(imagesStr)
	if err != nil {
		return models.BlogPost{}, err
	}
	p.Tags = tags
	p.Images = images
	if t, err := time.Parse(timestampLayout, createdAt); err == nil {
		p.CreatedAt = t.UTC()
	}
	return p, nil
}
