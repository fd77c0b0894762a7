package entity

// Specialty is a named medical discipline from the pre-seeded catalog
type Specialty struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Specialty) TableName() string {
	return "specialties"
}

// SpecialtyResolution is the outcome of matching requested names against the catalog.
// Matched maps each found name to its catalog id; Missing lists the requested names
// with no catalog row, in first-occurrence order without duplicates.
type SpecialtyResolution struct {
	Matched map[string]int
	Missing []string
}

// HasMissing reports whether any requested name was not found
func (r *SpecialtyResolution) HasMissing() bool {
	return len(r.Missing) > 0
}

// SpecialtyIDs returns the distinct matched ids in the order names were requested.
func (r *SpecialtyResolution) SpecialtyIDs(requested []string) []int {
	seen := make(map[int]struct{}, len(r.Matched))
	ids := make([]int, 0, len(r.Matched))
	for _, name := range requested {
		id, ok := r.Matched[name]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
