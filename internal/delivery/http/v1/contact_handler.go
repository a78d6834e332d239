package v1

import (
	"errors"
	"net/http"

	"stepfault-backend/internal/delivery/http/response"
	"stepfault-backend/internal/domain"
	"stepfault-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// The route is mounted both at /api/contact and /api/v1/contact so clients
// written against either path keep working.
func NewContactHandler(api *gin.RouterGroup, submissionUC domain.SubmissionUsecase, rateLimit gin.HandlerFunc) {
	handler := &ContactHandler{
		submissionUC: submissionUC,
	}

	api.POST("/contact", rateLimit, handler.SubmitContact)
	api.POST("/v1/contact", rateLimit, handler.SubmitContact)
}

// SubmitContact handles a contact form submission.
//
// Malformed JSON is a 400, a field that fails validation is a 422 naming
// the violated constraint, and everything else is a 200 acknowledgment --
// store and mail failures are contained inside the pipeline.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request format"))
		return
	}

	resp, err := h.submissionUC.Process(c.Request.Context(), &req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			response.Error(c, http.StatusUnprocessableEntity, verr.Reason, "Validation error")
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, resp.Message, nil)
}
