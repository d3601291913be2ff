package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part represents a catalog entry with its derived matching identity
type Part struct {
	Seq            int             `json:"seq" db:"seq"`
	Brand          string          `json:"brand" db:"brand"`
	CanonicalBrand string          `json:"canonical_brand" db:"canonical_brand"`
	PartNumber     string          `json:"part_number" db:"part_number"`
	CanonicalKey   string          `json:"canonical_key" db:"canonical_key"`
	Description    string          `json:"description" db:"description"`
	UnitPrice      decimal.Decimal `json:"unit_price" db:"unit_price"`
	CreatedAt      time.Time       `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at,omitempty" db:"updated_at"`
}

// IndexPartRequest represents the request to add or update a catalog part
type IndexPartRequest struct {
	Brand       string          `json:"brand"`
	PartNumber  string          `json:"part_number" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// IndexPartResponse represents the response for indexing a part
type IndexPartResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Seq          int      `json:"seq"`
	CanonicalKey string   `json:"canonical_key"`
	Tokens       []string `json:"tokens"`
}

// MatchCandidate is one catalog part produced by candidate generation,
// with the number of query tokens it shares
type MatchCandidate struct {
	Part          Part `json:"part"`
	MatchedTokens int  `json:"matched_tokens"`
}

// MatchResponse represents the candidate generation response
type MatchResponse struct {
	Success    bool             `json:"success"`
	Candidates []MatchCandidate `json:"candidates"`
	Tokens     []string         `json:"tokens"`
}

// BrandResolution represents the canonical form and synonym set of a brand
type BrandResolution struct {
	Brand    string   `json:"brand"`
	Synonyms []string `json:"synonyms"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
