package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"profpipe/internal"
)

// DB is the relational destination of the pipeline: the same two tables
// the CSV exports are written for, so a load can skip the bulk-copy step.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS academic_products (
  orcid TEXT PRIMARY KEY,
  profiles TEXT NOT NULL,
  introduction TEXT NOT NULL DEFAULT '',
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tags (
  orcid TEXT NOT NULL,
  tag_id INTEGER NOT NULL,
  sub_id INTEGER NOT NULL,
  UNIQUE(orcid, tag_id, sub_id),
  FOREIGN KEY(orcid) REFERENCES academic_products(orcid)
);
CREATE INDEX IF NOT EXISTS idx_tags_orcid ON tags(orcid);
`
	_, err := d.conn.Exec(schema)
	return err
}

// LoadRows bulk-loads both tables in one transaction. Re-loading the same
// document is idempotent: products upsert on orcid, tag rows dedupe on
// the full triple.
func (d *DB) LoadRows(products []internal.ProductRow, tags []internal.TagRow) (int, int, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	insertProduct, err := tx.Prepare(`
INSERT INTO academic_products (orcid, profiles, introduction)
VALUES (?, ?, ?)
ON CONFLICT(orcid) DO UPDATE SET
  profiles = excluded.profiles,
  introduction = excluded.introduction,
  updatedAt = CURRENT_TIMESTAMP`)
	if err != nil {
		return 0, 0, err
	}
	defer insertProduct.Close()

	insertTag, err := tx.Prepare(`
INSERT OR IGNORE INTO tags (orcid, tag_id, sub_id) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, 0, err
	}
	defer insertTag.Close()

	for _, row := range products {
		if _, err := insertProduct.Exec(row.Orcid, row.ProfilesJSON, row.Introduction); err != nil {
			return 0, 0, err
		}
	}
	for _, row := range tags {
		if _, err := insertTag.Exec(row.Orcid, row.TagID, row.SubID); err != nil {
			return 0, 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return len(products), len(tags), nil
}

func (d *DB) CountProducts() (int, error) {
	return d.countRows(`SELECT COUNT(*) FROM academic_products`)
}

func (d *DB) CountTags() (int, error) {
	return d.countRows(`SELECT COUNT(*) FROM tags`)
}

func (d *DB) countRows(query string) (int, error) {
	row := d.conn.QueryRow(query)
	count := 0
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
