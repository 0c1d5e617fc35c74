package models

// CategoryType classifies a node type for discovery; it is never consulted
// for dispatch.
type CategoryType string

const (
	CategoryData        CategoryType = "data"
	CategoryCalculation CategoryType = "calculation"
	CategoryAggregation CategoryType = "aggregation"
)
