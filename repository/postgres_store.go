// repository/postgres_store.go
package repository

import (
	"database/sql"
	"log"
)

// PostgresStore persists key-value blobs in the app_storage table
type PostgresStore struct {
	DB *sql.DB
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore() *PostgresStore {
	return &PostgresStore{
		DB: GetDB(),
	}
}

// Get retrieves a value by key
func (r *PostgresStore) Get(key string) (string, bool) {
	var value string
	err := r.DB.QueryRow(
		"SELECT value FROM app_storage WHERE key = $1",
		key,
	).Scan(&value)

	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("Failed to read key %s: %v", key, err)
		}
		return "", false
	}

	return value, true
}

// Set stores a value under a key, replacing any previous value
func (r *PostgresStore) Set(key string, value string) error {
	_, err := r.DB.Exec(
		`INSERT INTO app_storage (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	return err
}

// Remove deletes a key; missing keys are not an error
func (r *PostgresStore) Remove(key string) error {
	_, err := r.DB.Exec("DELETE FROM app_storage WHERE key = $1", key)
	return err
}
