package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. DateOfBirth is nullable; downstream
// projections substitute a documented fallback anchor when it is missing.
type Patient struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	HN          string     `db:"hn" json:"hn"`
	FirstName   string     `db:"first_name" json:"first_name"`
	LastName    string     `db:"last_name" json:"last_name"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
