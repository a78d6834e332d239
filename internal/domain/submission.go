package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Submission statuses. The pipeline only ever writes StatusNew; the other
// values belong to the downstream review tooling.
const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ValidStatus reports whether s is one of the known submission statuses.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusRead || s == StatusReplied
}

// Submission is a persisted contact form entry. ID and CreatedAt are
// assigned by the database on insert and are zero before persistence.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequest represents a contact form submission.
// Field order matters: the validator reports the first violation in
// declaration order, which fixes the name -> email -> message precedence.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// ContactResponse is the body returned to the submitter.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationError is the only failure the submission pipeline surfaces to
// its callers. Everything else (database, SMTP) is contained and logged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SubmissionRepository persists contact form submissions.
type SubmissionRepository interface {
	// Create inserts a validated submission and returns the stored row
	// with its database-assigned ID and timestamp.
	Create(ctx context.Context, s *Submission) (*Submission, error)
	// GetByID returns the submission with the given ID, or (nil, nil)
	// if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Submission, error)
	// UpdateStatus moves a submission through the review workflow.
	// Never called by the submission pipeline itself.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Mailer sends the two contact form notifications. The operations are
// independent: failure of one must not prevent attempting the other.
type Mailer interface {
	NotifyAdmin(ctx context.Context, name, email, message string) error
	NotifySubmitter(ctx context.Context, name, email string) error
}

// SubmissionUsecase defines the contact form pipeline shared by both
// entry adapters.
type SubmissionUsecase interface {
	// Process validates the request and, on well-formed input, persists
	// the submission and dispatches notifications best-effort. The only
	// error it returns is *ValidationError.
	Process(ctx context.Context, req *ContactRequest) (*ContactResponse, error)
}
