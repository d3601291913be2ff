package database

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// InitSchema creates the necessary database tables if they don't exist
func InitSchema(db *sql.DB) error {
	log.Info("Initializing part matching service database schema...")

	partsTableSQL := `
	CREATE TABLE IF NOT EXISTS parts(
		seq INT NOT NULL AUTO_INCREMENT,
		brand VARCHAR(255) NOT NULL DEFAULT '',
		canonical_brand VARCHAR(255) NOT NULL DEFAULT '',
		part_number VARCHAR(255) NOT NULL,
		canonical_key VARCHAR(255) NOT NULL,
		description TEXT,
		unit_price DECIMAL(12, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (seq),
		INDEX canonical_key_idx (canonical_key),
		INDEX canonical_brand_idx (canonical_brand)
	)`

	if _, err := db.Exec(partsTableSQL); err != nil {
		return fmt.Errorf("failed to create parts table: %w", err)
	}
	log.Info("parts table created/verified")

	// Inverted index: one row per (token, part). Candidate generation
	// is a token-overlap query over this table.
	partTokensTableSQL := `
	CREATE TABLE IF NOT EXISTS part_tokens(
		token VARCHAR(255) NOT NULL,
		part_seq INT NOT NULL,
		PRIMARY KEY (token, part_seq),
		INDEX token_idx (token),
		FOREIGN KEY (part_seq) REFERENCES parts(seq) ON DELETE CASCADE
	)`

	if _, err := db.Exec(partTokensTableSQL); err != nil {
		return fmt.Errorf("failed to create part_tokens table: %w", err)
	}
	log.Info("part_tokens table created/verified")

	log.Info("Part matching service database schema initialization completed")
	return nil
}
