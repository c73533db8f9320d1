// Package sqlite persists fetched kline records so the service can
// answer from local data when the upstream is unreachable. Records are
// stored raw, exactly as the feed sent them — parsing stays the series
// assembler's job.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Cache is a write-through store of raw kline records keyed by
// (secid, klt, date). Single-writer: connection pool capped at 1.
type Cache struct {
	db *sql.DB
}

// New opens (and if needed initializes) the kline cache at path.
func New(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS klines (
			secid TEXT    NOT NULL,
			klt   INTEGER NOT NULL,
			date  TEXT    NOT NULL,
			line  TEXT    NOT NULL,
			PRIMARY KEY (secid, klt, date)
		);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Put upserts a batch of raw records in one transaction. A re-fetched
// date replaces the stored record, mirroring the keep-last policy the
// series assembler applies.
func (c *Cache) Put(ctx context.Context, secid string, klt int, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO klines (secid, klt, date, line) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("sqlite prepare: %w", err)
	}
	defer stmt.Close()

	for _, line := range lines {
		date, _, _ := strings.Cut(line, ",")
		if _, err := stmt.Exec(secid, klt, date, line); err != nil {
			tx.Rollback()
			return fmt.Errorf("sqlite insert: %w", err)
		}
	}
	return tx.Commit()
}

// Range returns stored records whose calendar date falls in [beg, end]
// (both "YYYY-MM-DD", inclusive), ordered ascending. Intraday records
// compare on their date prefix so a day boundary includes the whole
// trading day.
func (c *Cache) Range(ctx context.Context, secid string, klt int, beg, end string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT line FROM klines
		WHERE secid = ? AND klt = ? AND substr(date, 1, 10) >= ? AND substr(date, 1, 10) <= ?
		ORDER BY date ASC
	`, secid, klt, beg, end)
	if err != nil {
		return nil, fmt.Errorf("sqlite query: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("sqlite scan: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Close closes the underlying database.
func (c *Cache) Close() error { return c.db.Close() }
