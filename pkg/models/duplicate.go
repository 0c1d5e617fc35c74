package models

// Duplicate match kinds and their confidence scores.
const (
	DuplicateTypeExact = "exact"
	DuplicateTypeFuzzy = "fuzzy"

	DuplicateConfidenceExact = 100
	DuplicateConfidenceFuzzy = 75
)

// DuplicateCandidate pairs two records suspected to be the same invoice.
type DuplicateCandidate struct {
	Group      []*Record `json:"group"`
	Confidence int       `json:"confidence"`
	Type       string    `json:"type"`
	Reason     string    `json:"reason"`
}

// DuplicateReport is the duplicate detector's output: exact and fuzzy
// candidates are independent lists with disjoint key spaces.
type DuplicateReport struct {
	Exact []DuplicateCandidate `json:"exact_duplicates"`
	Fuzzy []DuplicateCandidate `json:"fuzzy_duplicates"`
}
