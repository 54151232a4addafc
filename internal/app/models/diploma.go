package models

// Diploma is the ledger-resident record of an issued diploma. The JSON
// field names are part of the chaincode interface: they are also the
// attribute names used by the selector queries, so they must not change.
type Diploma struct {
	DiplomaID    string `json:"diplomaID"`
	NationalID   string `json:"nationalID"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth"`
	PlaceOfBirth string `json:"placeOfBirth"`
	DateOfIssue  string `json:"dateOfIssue"`
	Institution  string `json:"institution"`
	Course       string `json:"course"`
	Level        string `json:"level"`
	Degree       string `json:"degree"`
}

// BusinessKey returns the attribute tuple that is expected to identify a
// diploma uniquely in practice. Uniqueness of this tuple is checked by the
// assembler before creation, not enforced by the ledger.
type BusinessKey struct {
	NationalID  string
	Institution string
	Course      string
	Level       string
}

// Key returns the diploma's business key.
func (d *Diploma) Key() BusinessKey {
	return BusinessKey{
		NationalID:  d.NationalID,
		Institution: d.Institution,
		Course:      d.Course,
		Level:       d.Level,
	}
}
