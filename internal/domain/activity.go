package domain

// Activity is an extracurricular offering with a capacity-bounded roster.
// The display name doubles as the catalog key. Participants keeps signup
// order; every email appears at most once.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Full reports whether the roster has reached capacity.
func (a Activity) Full() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Enrolled reports whether the email already appears on the roster.
func (a Activity) Enrolled(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
