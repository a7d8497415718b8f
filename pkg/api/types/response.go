package types

import (
	"warden-hq/warden/pkg/moderation"
)

// BatchFlagResponse is the response body for POST /v1/moderation/flag/batch.
// Results appear in the same order as the request items.
type BatchFlagResponse struct {
	// Results holds one FlagResponse per submitted item, in input order.
	Results []moderation.FlagResponse `json:"results"`

	// Count is the number of results, equal to the number of items.
	Count int `json:"count"`
}

// CategoryInfo describes one catalog category for the listing endpoint.
type CategoryInfo struct {
	// Category is the category identifier, e.g. "hate_speech".
	Category moderation.Category `json:"category"`

	// BaseSeverity is the severity assigned before any escalation.
	BaseSeverity moderation.Severity `json:"baseSeverity"`

	// RuleCount is the number of rules currently loaded for the category.
	// Reserved categories report zero.
	RuleCount int `json:"ruleCount"`
}

// CategoriesResponse is the response body for GET /v1/moderation/categories.
type CategoriesResponse struct {
	// Categories lists every category in catalog iteration order.
	Categories []CategoryInfo `json:"categories"`
}
