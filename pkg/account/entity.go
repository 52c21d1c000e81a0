package account

import "time"

// Profile is the companion document stored for every registered account.
// The document is keyed by the identity provider's user id; there is no
// separate primary key.
type Profile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	BirthDate string     `json:"birthDate"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
