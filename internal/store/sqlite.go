package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jgoulah/homeaudit/pkg/models"
	_ "modernc.org/sqlite"
)

// DB is the SQLite-backed record store
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS assessments (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// Get retrieves an assessment by id, returning nil if it doesn't exist
func (db *DB) Get(id string) (*models.Assessment, error) {
	row := db.conn.QueryRow(`SELECT data FROM assessments WHERE id = ?`, id)

	var data string
	err := row.Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying assessment: %w", err)
	}

	var assessment models.Assessment
	if err := json.Unmarshal([]byte(data), &assessment); err != nil {
		return nil, fmt.Errorf("decoding assessment %s: %w", id, err)
	}

	return &assessment, nil
}

// Put inserts an assessment, replacing any existing record under the same id
func (db *DB) Put(id string, assessment models.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("encoding assessment %s: %w", id, err)
	}

	query := `
	INSERT INTO assessments (id, data) VALUES (?, ?)
	ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`

	if _, err := db.conn.Exec(query, id, string(data)); err != nil {
		return fmt.Errorf("writing assessment %s: %w", id, err)
	}

	return nil
}

// Delete removes an assessment and returns the prior value, or nil if absent
func (db *DB) Delete(id string) (*models.Assessment, error) {
	prior, err := db.Get(id)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, nil
	}

	if _, err := db.conn.Exec(`DELETE FROM assessments WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("deleting assessment %s: %w", id, err)
	}

	return prior, nil
}

// Values retrieves all assessments ordered by id
func (db *DB) Values() ([]models.Assessment, error) {
	rows, err := db.conn.Query(`SELECT data FROM assessments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying assessments: %w", err)
	}
	defer rows.Close()

	var results []models.Assessment
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		var assessment models.Assessment
		if err := json.Unmarshal([]byte(data), &assessment); err != nil {
			return nil, fmt.Errorf("decoding assessment: %w", err)
		}

		results = append(results, assessment)
	}

	return results, rows.Err()
}
