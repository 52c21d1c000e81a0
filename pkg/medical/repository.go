package medical

import "context"

// FormRepository abstracts the document store collection holding forms.
type FormRepository interface {
	// Add appends a form and returns its generated id. The store assigns
	// the creation timestamp.
	Add(ctx context.Context, form Form) (string, error)
	// ListByUser returns all forms for a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]Form, error)
}
