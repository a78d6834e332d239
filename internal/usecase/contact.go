package usecase

import (
	"context"
	"errors"
	"strings"

	"stepfault-backend/internal/domain"
	"stepfault-backend/pkg/logger"
	"stepfault-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const thankYouMessage = "Thank you for your message. We'll get back to you soon!"

type submissionUsecase struct {
	repo     domain.SubmissionRepository
	mailer   domain.Mailer
	validate *validator.Validate
}

// NewSubmissionUsecase creates the contact form pipeline shared by the API
// route and the standalone function handler.
func NewSubmissionUsecase(repo domain.SubmissionRepository, mailer domain.Mailer, validate *validator.Validate) domain.SubmissionUsecase {
	return &submissionUsecase{
		repo:     repo,
		mailer:   mailer,
		validate: validate,
	}
}

// Process runs the submission pipeline: validate, then best-effort persist,
// admin notification and auto-reply, then a uniform acknowledgment. Once
// input has validated the submitter always gets a success response; store
// and SMTP failures stay internal.
func (uc *submissionUsecase) Process(ctx context.Context, req *domain.ContactRequest) (*domain.ContactResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := uc.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			// First violation wins; struct field order fixes the
			// name -> email -> message precedence.
			fe := verrs[0]
			return nil, &domain.ValidationError{
				Field:  strings.ToLower(fe.Field()),
				Reason: validation.FieldMessage(fe),
			}
		}
		return nil, err
	}

	logger.Log.Info("processing contact submission",
		"name", req.Name, "email", req.Email, "message_chars", len(req.Message))

	bestEffort("save submission", func() error {
		stored, err := uc.repo.Create(ctx, &domain.Submission{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
			Status:  domain.StatusNew,
		})
		if err != nil {
			return err
		}
		logger.Log.Info("contact submission saved", "id", stored.ID)
		return nil
	})

	bestEffort("admin notification", func() error {
		return uc.mailer.NotifyAdmin(ctx, req.Name, req.Email, req.Message)
	})

	bestEffort("auto-reply", func() error {
		return uc.mailer.NotifySubmitter(ctx, req.Name, req.Email)
	})

	return &domain.ContactResponse{
		Success: true,
		Message: thankYouMessage,
	}, nil
}

// bestEffort runs one side-effecting pipeline step and deliberately
// discards its error. Infrastructure failures (database or SMTP outages)
// must never surface to the submitter; they are logged and nothing more.
func bestEffort(step string, fn func() error) {
	if err := fn(); err != nil {
		logger.Log.Error("contact pipeline step failed", "step", step, "error", err)
	}
}
