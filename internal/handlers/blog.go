package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"blog_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errBlogNotFound  = "blog not found"
	errNotBlogAuthor = "not authorized to modify this blog"
)

// updateBlogRequest is a partial update; absent fields are left untouched.
type updateBlogRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// splitTags turns the comma-separated multipart "tags" field into a list.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// fileUpload adapts a multipart file header for the service layer.
// The returned closer must be closed after the service call.
func fileUpload(fh *multipart.FileHeader) (service.FileUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return service.FileUpload{}, nil, err
	}
	return service.FileUpload{Filename: fh.Filename, Reader: f}, func() { _ = f.Close() }, nil
}

// @Summary      Create a blog post
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Param        title          formData  string  true   "Title"
// @Param        content        formData  string  true   "Content"
// @Param        tags           formData  string  false  "Comma-separated tags"
// @Param        feature_image  formData  file    true   "Feature image"
// @Param        images         formData  file    false  "Gallery images (up to 3)"
// @Success      200  {object}  models.BlogPost
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /blogs [post]
// @Security     BearerAuth
func (h *Handler) createBlog(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	featureHeader, err := c.FormFile("feature_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feature_image is required"})
		return
	}
	feature, closeFeature, err := fileUpload(featureHeader)
	if err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, "failed to read feature image", "blog_upload_open_failed", err)
		return
	}
	defer closeFeature()

	var gallery []service.FileUpload
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["images"] {
			up, closeUp, err := fileUpload(fh)
			if err != nil {
				h.logAndJSONError(c, http.StatusBadRequest, "failed to read gallery image", "blog_upload_open_failed", err)
				return
			}
			defer closeUp()
			gallery = append(gallery, up)
		}
	}

	post, err := h.services.Blogs.Create(c.Request.Context(), service.CreateBlogInput{
		Title:       title,
		Content:     content,
		Tags:        splitTags(c.PostForm("tags")),
		AuthorEmail: user.Email,
		Feature:     feature,
		Gallery:     gallery,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create blog", "blog_create_failed", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary      List blog posts
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  models.BlogPost
// @Failure      500  {object}  map[string]string
// @Router       /blogs [get]
func (h *Handler) listBlogs(c *gin.Context) {
	posts, err := h.services.Blogs.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load blogs", "blog_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Get a blog post
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  models.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id} [get]
func (h *Handler) getBlog(c *gin.Context) {
	post, err := h.services.Blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBlogNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load blog", "blog_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Update a blog post
// @Description  Only the author may update. Absent fields are left unchanged.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Blog ID"
// @Param        body  body      updateBlogRequest  true  "Fields to update"
// @Success      200   {object}  models.BlogPost
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /blogs/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateBlog(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var input updateBlogRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	post, err := h.services.Blogs.Update(c.Request.Context(), c.Param("id"), user.Email, service.UpdateBlogInput{
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
	})
	if err != nil {
		h.respondBlogMutationError(c, err, "blog_update_failed")
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteBlog(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.services.Blogs.Delete(c.Request.Context(), c.Param("id"), user.Email); err != nil {
		h.respondBlogMutationError(c, err, "blog_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blog deleted"})
}

// respondBlogMutationError maps ownership/existence errors to 403/404 and
// everything else to 500.
func (h *Handler) respondBlogMutationError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errBlogNotFound})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": errNotBlogAuthor})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "operation failed", logKey, err)
	}
}
