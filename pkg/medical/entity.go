package medical

import "time"

// Form is a submitted medical triage form. Forms are immutable once stored.
// UserID references an account id but is deliberately not validated against
// an existing account. CreatedAt is assigned by the document store at write
// time and is null until the store materializes it.
type Form struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Name          string     `json:"name"`
	Country       string     `json:"country"`
	HasDisease    bool       `json:"hasDisease"`
	Disease       string     `json:"disease"`
	Duration      string     `json:"duration"`
	Temperature   string     `json:"temperature"`
	ProblemNature string     `json:"problemNature"`
	Symptoms      string     `json:"symptoms"`
	CreatedAt     *time.Time `json:"createdAt"`
}
