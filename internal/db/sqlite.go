package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/thesavant42/rickdex/internal/models"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite snapshot database.
// It is write-only from the client's point of view: nothing here answers a request.
type DB struct {
	conn   *sql.DB
	logger *log.Logger
}

// CharacterRow is the flattened character used by exports
type CharacterRow struct {
	ID           int64
	Name         string
	Status       string
	Species      string
	Gender       string
	OriginName   string
	LocationName string
}

// New creates a new database connection and initializes the schema
func New(dbPath string, logger *log.Logger) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for name, ddl := range map[string]string{
		"characters": createCharactersTable,
		"episodes":   createEpisodesTable,
		"locations":  createLocationsTable,
	} {
		if _, err := conn.Exec(ddl); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to create %s schema: %w", name, err)
		}
	}

	return &DB{conn: conn, logger: logger}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// SavePage writes every record of a decoded page and returns how many were written
func (db *DB) SavePage(page any) (int, error) {
	var (
		n   int
		err error
	)
	switch p := page.(type) {
	case *models.CharacterPage:
		n, err = len(p.Results), db.SaveCharacters(p.Results)
	case *models.EpisodePage:
		n, err = len(p.Results), db.SaveEpisodes(p.Results)
	case *models.LocationPage:
		n, err = len(p.Results), db.SaveLocations(p.Results)
	default:
		return 0, fmt.Errorf("cannot save %T", page)
	}
	if err != nil {
		return 0, err
	}

	if db.logger != nil {
		db.logger.Debug("snapshot saved", "records", n)
	}
	return n, nil
}

// SaveCharacters upserts characters by id
func (db *DB) SaveCharacters(chars []models.Character) error {
	return db.insertAll(insertCharacter, len(chars), func(stmt *sql.Stmt, i int) error {
		c := chars[i]
		episodes, err := json.Marshal(c.Episode)
		if err != nil {
			return err
		}
		_, err = stmt.Exec(
			c.ID, c.Name, string(c.Status), string(c.Species), c.Type, string(c.Gender),
			c.Origin.Name, c.Origin.URL, c.Location.Name, c.Location.URL,
			c.Image, string(episodes), c.URL, c.Created,
		)
		if err != nil {
			return fmt.Errorf("failed to insert character %d: %w", c.ID, err)
		}
		return nil
	})
}

// SaveEpisodes upserts episodes by id
func (db *DB) SaveEpisodes(episodes []models.Episode) error {
	return db.insertAll(insertEpisode, len(episodes), func(stmt *sql.Stmt, i int) error {
		e := episodes[i]
		chars, err := json.Marshal(e.Characters)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(e.ID, e.Name, e.AirDate, e.Episode, string(chars), e.URL, e.Created); err != nil {
			return fmt.Errorf("failed to insert episode %d: %w", e.ID, err)
		}
		return nil
	})
}

// SaveLocations upserts locations by id
func (db *DB) SaveLocations(locations []models.Location) error {
	return db.insertAll(insertLocation, len(locations), func(stmt *sql.Stmt, i int) error {
		l := locations[i]
		residents, err := json.Marshal(l.Residents)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(l.ID, l.Name, l.Type, l.Dimension, string(residents), l.URL, l.Created); err != nil {
			return fmt.Errorf("failed to insert location %d: %w", l.ID, err)
		}
		return nil
	})
}

// insertAll runs exec for n rows inside one transaction with a prepared statement
func (db *DB) insertAll(query string, n int, exec func(stmt *sql.Stmt, i int) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if err := exec(stmt, i); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CharacterRows returns every saved character ordered by id
func (db *DB) CharacterRows() ([]CharacterRow, error) {
	rows, err := db.conn.Query(selectCharacterRows)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer rows.Close()

	var out []CharacterRow
	for rows.Next() {
		var r CharacterRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Status, &r.Species, &r.Gender, &r.OriginName, &r.LocationName); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of rows in one of the snapshot tables
func (db *DB) Count(table string) (int, error) {
	switch table {
	case "characters", "episodes", "locations":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}

	var n int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
