package main

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Storage records raw samples and summaries of one run. Remote libsql
// databases and local sqlite files share the same schema.
type Storage struct {
	db  *sql.DB
	run string
}

func storageDriver(dsn string) string {
	for _, scheme := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "libsql"
		}
	}
	return "sqlite"
}

func OpenStorage(dsn string, run string) (*Storage, error) {
	db, err := sql.Open(storageDriver(dsn), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open results db: %w", err)
	}
	return &Storage{db: db, run: run}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) InitResultsDb(ctx context.Context, meta map[string]any) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS parameters (
		run TEXT,
		name TEXT,
		value,
		PRIMARY KEY (run, name)
	)`)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS measurements (
		run TEXT,
		name TEXT,
		trial INTEGER,
		value INTEGER,
		PRIMARY KEY (run, name, trial)
	)`)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS summaries (
		run TEXT,
		name TEXT,
		q50 INTEGER,
		std INTEGER,
		PRIMARY KEY (run, name)
	)`)
	if err != nil {
		return err
	}

	parameters := make([]any, 0)
	parameters = append(parameters, s.run, "time", time.Now().Format("2006-01-02 15:04:05"))
	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		parameters = append(parameters, s.run, key, fmt.Sprintf("%v", meta[key]))
	}
	tuples := make([]string, len(parameters)/3)
	for i := range tuples {
		tuples[i] = "(?, ?, ?)"
	}
	placeholders := strings.Join(tuples, ", ")
	_, err = s.db.ExecContext(
		ctx,
		fmt.Sprintf("INSERT INTO parameters VALUES %v ON CONFLICT DO NOTHING", placeholders),
		parameters...,
	)
	if err != nil {
		return err
	}
	Logger.Infof("initialized results db for run %v", s.run)
	return nil
}

func (s *Storage) UpdateResultsDb(ctx context.Context, result Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, sample := range result.Samples {
		_, err = tx.ExecContext(ctx, "INSERT INTO measurements VALUES (?, ?, ?, ?)", s.run, result.Input.Name, i, sample)
		if err != nil {
			return err
		}
	}
	_, err = tx.ExecContext(
		ctx,
		"INSERT INTO summaries VALUES (?, ?, ?, ?)",
		s.run,
		result.Input.Name,
		result.Summary.Median,
		result.Summary.Std,
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Storage) Parameters(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, value FROM parameters WHERE run = ?", s.run)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	results := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		results[name] = value
	}
	return results, rows.Err()
}

func (s *Storage) Measurements(ctx context.Context, name string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT value FROM measurements WHERE run = ? AND name = ? ORDER BY trial", s.run, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	samples := make([]int64, 0)
	for rows.Next() {
		var value int64
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		samples = append(samples, value)
	}
	return samples, rows.Err()
}
