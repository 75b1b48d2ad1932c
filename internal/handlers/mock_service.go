package handlers

import (
	"bytes"
	"context"
	"io"

	"blog_backend/internal/models"
	"blog_backend/internal/service"
	"blog_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken string
	signUpErr   error
	loginToken  string
	loginErr    error
	parseEmail  string
	parseErr    error
	user        *models.User
	userErr     error

	lastSignUpEmail string
	lastLoginEmail  string
	lastParseToken  string
	lastLookupEmail string
}

func (m *mockAuth) SignUp(ctx context.Context, name, email, password string) (string, error) {
	m.lastSignUpEmail = email
	return m.signUpToken, m.signUpErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(accessToken string) (string, error) {
	m.lastParseToken = accessToken
	return m.parseEmail, m.parseErr
}

func (m *mockAuth) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.lastLookupEmail = email
	return m.user, m.userErr
}

type mockBlogs struct {
	createPost *models.BlogPost
	createErr  error
	listPosts  []models.BlogPost
	listErr    error
	getPost    *models.BlogPost
	getErr     error
	updatePost *models.BlogPost
	updateErr  error
	deleteErr  error

	lastCreate      service.CreateBlogInput
	lastUpdateID    string
	lastUpdateEmail string
	lastDeleteID    string
	lastDeleteEmail string
}

func (m *mockBlogs) Create(ctx context.Context, in service.CreateBlogInput) (*models.BlogPost, error) {
	m.lastCreate = in
	return m.createPost, m.createErr
}

func (m *mockBlogs) List(ctx context.Context) ([]models.BlogPost, error) {
	return m.listPosts, m.listErr
}

func (m *mockBlogs) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	return m.getPost, m.getErr
}

func (m *mockBlogs) Update(ctx context.Context, id, authorEmail string, in service.UpdateBlogInput) (*models.BlogPost, error) {
	m.lastUpdateID = id
	m.lastUpdateEmail = authorEmail
	return m.updatePost, m.updateErr
}

func (m *mockBlogs) Delete(ctx context.Context, id, authorEmail string) error {
	m.lastDeleteID = id
	m.lastDeleteEmail = authorEmail
	return m.deleteErr
}

type mockContact struct {
	submitErr error
	lastInput service.ContactInput
	calls     int
}

func (m *mockContact) Submit(ctx context.Context, in service.ContactInput) error {
	m.calls++
	m.lastInput = in
	return m.submitErr
}

// mockFileStore keeps "files" in a map keyed by stored name.
type mockFileStore struct {
	files   map[string][]byte
	saveErr error
	openErr error
}

func (m *mockFileStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[filename] = b
	return filename, nil
}

func (m *mockFileStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	b, ok := m.files[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, files storage.FileStore) *gin.Engine {
	h := NewHandler(s, files, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
