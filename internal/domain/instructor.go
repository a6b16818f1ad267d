package domain

import "time"

// Instructor represents a studio instructor profile
type Instructor struct {
	ID          int64
	Name        string
	Specialties []string
	Bio         string
	PhotoURL    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSpecialty returns true if the instructor lists the given specialty
func (i *Instructor) HasSpecialty(specialty string) bool {
	for _, s := range i.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}
