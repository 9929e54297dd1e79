package lib

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const createScansTableSQL = `CREATE TABLE IF NOT EXISTS scans (
	name       TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	consumed   INT NOT NULL,
	complete   BOOLEAN NOT NULL,
	tokens     JSONB NOT NULL,
	scanned_at TIMESTAMP WITH TIME ZONE NOT NULL
)`

const upsertScanSQL = `INSERT INTO scans (name, source, consumed, complete, tokens, scanned_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (name) DO UPDATE SET
	source = EXCLUDED.source,
	consumed = EXCLUDED.consumed,
	complete = EXCLUDED.complete,
	tokens = EXCLUDED.tokens,
	scanned_at = EXCLUDED.scanned_at`

const selectScanSQL = `SELECT name, source, consumed, complete, tokens, scanned_at FROM scans WHERE name = $1`

// ScanRecord is one row of the scans table.
type ScanRecord struct {
	Name      string
	Source    string
	Consumed  int
	Complete  bool
	Tokens    []Token
	ScannedAt time.Time
}

func newScanRecord(src *Source, at time.Time) ScanRecord {
	res := src.Scan()
	return ScanRecord{
		Name:      src.Name,
		Source:    src.Text,
		Consumed:  res.Consumed,
		Complete:  res.Complete,
		Tokens:    res.Tokens,
		ScannedAt: at,
	}
}

// RecordScans scans every source and stores the results in postgres,
// replacing earlier rows with the same name.
func RecordScans(ctx context.Context, connectionString string, sources []*Source) error {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := requireScansTable(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, src := range sources {
		if err := execUpsert(ctx, tx, newScanRecord(src, now)); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func requireScansTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, createScansTableSQL)
	if err != nil {
		return fmt.Errorf("Cannot create scans table: %w", err)
	}
	return nil
}

func execUpsert(ctx context.Context, tx *sql.Tx, rec ScanRecord) error {
	var buf bytes.Buffer
	if err := MarshalTokens(&buf, rec.Tokens, false); err != nil {
		return err
	}

	_, err := tx.ExecContext(ctx, upsertScanSQL,
		rec.Name, rec.Source, rec.Consumed, rec.Complete, buf.String(), rec.ScannedAt)
	if err != nil {
		return fmt.Errorf("Cannot record scan '%s': %w", rec.Name, err)
	}
	return nil
}

// LoadScan reads a stored scan back. The bool is false when no row has that
// name.
func LoadScan(ctx context.Context, db *sql.DB, name string) (ScanRecord, bool, error) {
	var rec ScanRecord
	var tokens []byte

	err := db.QueryRowContext(ctx, selectScanSQL, name).Scan(
		&rec.Name, &rec.Source, &rec.Consumed, &rec.Complete, &tokens, &rec.ScannedAt)
	if err == sql.ErrNoRows {
		return ScanRecord{}, false, nil
	}
	if err != nil {
		return ScanRecord{}, false, err
	}

	rec.Tokens, err = UnmarshalTokens(tokens)
	if err != nil {
		return ScanRecord{}, false, err
	}
	return rec, true, nil
}
