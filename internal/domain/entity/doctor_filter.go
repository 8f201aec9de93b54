package entity

// AllSpecialties is the sentinel the directory UI sends when no specialty
// filter is applied.
const AllSpecialties = "All Specialties"

// DoctorFilter is a domain-level filter for querying the doctor directory.
// Used by the repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialty string // Exact match; empty or AllSpecialties means no filter
	Search    string // Case-insensitive substring match on name (ILIKE)
}
