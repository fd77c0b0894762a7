package entity

// RegistrationOutcome names the terminal state a registration reached once the
// doctor row exists. Pre-insert failures are reported as errors instead.
type RegistrationOutcome string

const (
	RegistrationRegistered                       RegistrationOutcome = "registered"
	RegistrationRegisteredWithSpecialtyError     RegistrationOutcome = "registered_with_specialty_error"
	RegistrationRegisteredWithMissingSpecialties RegistrationOutcome = "registered_with_missing_specialties"
	RegistrationRegisteredWithAssociationError   RegistrationOutcome = "registered_with_association_error"
)

// Registration is the result of a registration that persisted the doctor row
type Registration struct {
	Outcome            RegistrationOutcome
	DoctorID           int64
	MissingSpecialties []string
	// Detail is an opaque, caller-safe diagnostic for degraded outcomes.
	Detail string
}

// IsComplete reports whether the doctor and every requested specialty were stored
func (r *Registration) IsComplete() bool {
	return r.Outcome == RegistrationRegistered
}

// IsDegraded reports whether the doctor exists but specialty linkage did not complete
func (r *Registration) IsDegraded() bool {
	return !r.IsComplete()
}

// Success is true for every outcome that reaches this type; the doctor exists.
func (r *Registration) Success() bool {
	return r.DoctorID != 0
}
