package handlers

import (
	"net/http"

	"blog_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	ContactNumber string `json:"contact_number" binding:"required"`
	Message       string `json:"message" binding:"required"`
}

// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /contact [post]
func (h *Handler) submitContact(c *gin.Context) {
	var input contactRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Contact.Submit(c.Request.Context(), service.ContactInput{
		Name:          input.Name,
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		Message:       input.Message,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to submit message", "contact_submit_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thank you! Your message has been received."})
}
