package models

// Institution represents one link of an institution chain. ParentID is nil
// for a root institution; the chain is not guaranteed to be acyclic.
type Institution struct {
	ID       int64  `json:"id" db:"institution_id"`
	Name     string `json:"name" db:"institution_name"`
	ParentID *int64 `json:"parentId,omitempty" db:"parent_institution_id"`
}
