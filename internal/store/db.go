package store

import (
	"database/sql"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store is the durable order repository for deployments that set DB_PATH.
// It satisfies orders.Repository.
type Store struct {
	DB *sql.DB
}

func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}
