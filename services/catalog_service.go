package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"partmatch/matching"
	"partmatch/models"

	"github.com/apex/log"
)

// CatalogService is the downstream index for part identities: it
// stores each part's canonical key and token set and generates match
// candidates by token overlap.
type CatalogService struct {
	db       *sql.DB
	synonyms matching.SynonymMap
}

// NewCatalogService creates a new catalog service
func NewCatalogService(db *sql.DB, synonyms matching.SynonymMap) *CatalogService {
	return &CatalogService{db: db, synonyms: synonyms}
}

// IndexPart adds a part to the catalog or updates the entry that
// already carries the same canonical identity. Returns the stored part
// and the token set written to the inverted index.
func (s *CatalogService) IndexPart(ctx context.Context, req *models.IndexPartRequest) (*models.Part, []string, error) {
	part := &models.Part{
		Brand:          req.Brand,
		CanonicalBrand: matching.CanonicalizeBrand(req.Brand),
		PartNumber:     req.PartNumber,
		CanonicalKey:   matching.Normalize(req.PartNumber),
		Description:    req.Description,
		UnitPrice:      req.UnitPrice,
	}
	tokens := sortedTokens(matching.Tokenize(req.Brand + " " + req.PartNumber))

	// The part row and its inverted-index rows must change together;
	// a partial token rewrite would hide the part from MatchCandidates.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback will be ignored if tx.Commit() is called

	var seq int
	err = tx.QueryRowContext(ctx,
		`SELECT seq FROM parts WHERE canonical_key = ? AND canonical_brand = ?`,
		part.CanonicalKey, part.CanonicalBrand).Scan(&seq)
	switch {
	case err == sql.ErrNoRows:
		result, err := tx.ExecContext(ctx,
			`INSERT INTO parts (brand, canonical_brand, part_number, canonical_key, description, unit_price)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			part.Brand, part.CanonicalBrand, part.PartNumber, part.CanonicalKey,
			part.Description, part.UnitPrice)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to insert part: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get inserted part seq: %w", err)
		}
		seq = int(id)
	case err != nil:
		return nil, nil, fmt.Errorf("failed to look up existing part: %w", err)
	default:
		_, err := tx.ExecContext(ctx,
			`UPDATE parts SET brand = ?, part_number = ?, description = ?, unit_price = ? WHERE seq = ?`,
			part.Brand, part.PartNumber, part.Description, part.UnitPrice, seq)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to update part %d: %w", seq, err)
		}
	}
	part.Seq = seq

	if err := replaceTokens(ctx, tx, seq, tokens); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit part index: %w", err)
	}

	log.Infof("Indexed part %d (%s %s) with %d tokens", seq, part.CanonicalBrand, part.CanonicalKey, len(tokens))
	return part, tokens, nil
}

// replaceTokens rewrites the inverted index rows for one part
func replaceTokens(ctx context.Context, tx *sql.Tx, seq int, tokens []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM part_tokens WHERE part_seq = ?`, seq); err != nil {
		return fmt.Errorf("failed to clear tokens for part %d: %w", seq, err)
	}
	for _, token := range tokens {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO part_tokens (token, part_seq) VALUES (?, ?)`, token, seq); err != nil {
			return fmt.Errorf("failed to insert token %q for part %d: %w", token, seq, err)
		}
	}
	return nil
}

// FindByCanonicalKey returns the parts stored under the canonical key
// of the given raw part number
func (s *CatalogService) FindByCanonicalKey(ctx context.Context, rawNumber string) ([]models.Part, error) {
	key := matching.Normalize(rawNumber)
	if key == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, brand, canonical_brand, part_number, canonical_key, description, unit_price
		 FROM parts WHERE canonical_key = ?`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query parts by canonical key: %w", err)
	}
	defer rows.Close()

	var parts []models.Part
	for rows.Next() {
		var p models.Part
		if err := rows.Scan(&p.Seq, &p.Brand, &p.CanonicalBrand, &p.PartNumber,
			&p.CanonicalKey, &p.Description, &p.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan part row: %w", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over part rows: %w", err)
	}
	return parts, nil
}

// MatchCandidates generates catalog candidates for a raw descriptor by
// token overlap, most shared tokens first. When a brand is given, the
// candidates are restricted to that brand and its synonyms. Ranking
// beyond the overlap count is the caller's concern.
func (s *CatalogService) MatchCandidates(ctx context.Context, rawBrand, rawNumber string, limit int) ([]models.MatchCandidate, []string, error) {
	tokens := sortedTokens(matching.Tokenize(rawNumber))
	if len(tokens) == 0 {
		return nil, nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	args := make([]interface{}, 0, len(tokens)+1)
	for _, token := range tokens {
		args = append(args, token)
	}

	query := `SELECT p.seq, p.brand, p.canonical_brand, p.part_number, p.canonical_key, p.description, p.unit_price,
		COUNT(DISTINCT t.token) AS matched_tokens
		FROM parts p
		JOIN part_tokens t ON p.seq = t.part_seq
		WHERE t.token IN (` + placeholders(len(tokens)) + `)`

	if brands := s.brandFilter(rawBrand); len(brands) > 0 {
		query += ` AND p.canonical_brand IN (` + placeholders(len(brands)) + `)`
		for _, brand := range brands {
			args = append(args, brand)
		}
	}

	query += ` GROUP BY p.seq, p.brand, p.canonical_brand, p.part_number, p.canonical_key, p.description, p.unit_price
		ORDER BY matched_tokens DESC, p.seq ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query match candidates: %w", err)
	}
	defer rows.Close()

	var candidates []models.MatchCandidate
	for rows.Next() {
		var c models.MatchCandidate
		if err := rows.Scan(&c.Part.Seq, &c.Part.Brand, &c.Part.CanonicalBrand, &c.Part.PartNumber,
			&c.Part.CanonicalKey, &c.Part.Description, &c.Part.UnitPrice, &c.MatchedTokens); err != nil {
			return nil, nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating over candidate rows: %w", err)
	}

	log.Infof("Match for %q/%q produced %d candidates from %d tokens", rawBrand, rawNumber, len(candidates), len(tokens))
	return candidates, tokens, nil
}

// DeletePart removes a part and, via the schema's cascade, its tokens
func (s *CatalogService) DeletePart(ctx context.Context, seq int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM parts WHERE seq = ?`, seq)
	if err != nil {
		return fmt.Errorf("failed to delete part %d: %w", seq, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get delete status for part %d: %w", seq, err)
	}
	if rows == 0 {
		return fmt.Errorf("part %d not found", seq)
	}
	return nil
}

// ResolveBrand returns the display form of a brand together with its
// synonym spellings, the query brand included, so the result is usable
// as a single membership set.
func (s *CatalogService) ResolveBrand(rawBrand string) models.BrandResolution {
	canonical := matching.CanonicalizeBrand(rawBrand)

	set := s.synonyms.Resolve(rawBrand)
	synonyms := make([]string, 0, len(set))
	for name := range set {
		synonyms = append(synonyms, name)
	}
	sort.Strings(synonyms)

	return models.BrandResolution{Brand: canonical, Synonyms: synonyms}
}

// brandFilter expands a query brand into the canonical display forms
// of the brand and all its synonyms. Empty input means no filter.
func (s *CatalogService) brandFilter(rawBrand string) []string {
	if strings.TrimSpace(rawBrand) == "" {
		return nil
	}

	// The brand's own spelling is unioned in explicitly; synonym sets
	// do not include their own key.
	brands := []string{matching.CanonicalizeBrand(rawBrand)}
	for name := range s.synonyms.Resolve(rawBrand) {
		brands = append(brands, matching.CanonicalizeBrand(name))
	}
	sort.Strings(brands)
	return brands
}

func sortedTokens(set map[string]struct{}) []string {
	tokens := make([]string, 0, len(set))
	for token := range set {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
