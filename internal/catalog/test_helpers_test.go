package catalog

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates a temporary SQLite database with the catalog schema applied.
// The database file is cleaned up when the test completes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	// Use a temp file so WAL mode works (in-memory doesn't support it)
	f, err := os.CreateTemp("", "catalog-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	migrationSQL := `
		CREATE TABLE people (
			id TEXT PRIMARY KEY,
			last_name TEXT NOT NULL,
			first_name TEXT NOT NULL,
			birth_date TEXT,
			country_birth_location TEXT NOT NULL,
			email TEXT NOT NULL
		) STRICT;

		CREATE UNIQUE INDEX idx_people_email ON people(email);

		CREATE TABLE televisions (
			id TEXT PRIMARY KEY,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			creation_date TEXT,
			value REAL NOT NULL DEFAULT 0,
			is_3d INTEGER NOT NULL DEFAULT 0,
			is_being_sold INTEGER NOT NULL DEFAULT 0
		) STRICT;

		CREATE TABLE computers (
			id TEXT PRIMARY KEY,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			creation_date TEXT,
			is_active INTEGER NOT NULL DEFAULT 0
		) STRICT;

		CREATE TABLE home_theaters (
			id TEXT PRIMARY KEY,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			creation_date TEXT,
			value REAL NOT NULL DEFAULT 0,
			reads_blu_ray INTEGER NOT NULL DEFAULT 0,
			is_being_sold INTEGER NOT NULL DEFAULT 0
		) STRICT;

		CREATE TABLE people_televisions (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL,
			television_id TEXT NOT NULL
		) STRICT;

		CREATE INDEX idx_people_televisions_person ON people_televisions(person_id);
		CREATE INDEX idx_people_televisions_television ON people_televisions(television_id);

		CREATE TABLE people_computers (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL,
			computer_id TEXT NOT NULL
		) STRICT;

		CREATE INDEX idx_people_computers_person ON people_computers(person_id);
		CREATE INDEX idx_people_computers_computer ON people_computers(computer_id);

		CREATE TABLE people_home_theaters (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL,
			home_theater_id TEXT NOT NULL
		) STRICT;

		CREATE INDEX idx_people_home_theaters_person ON people_home_theaters(person_id);
		CREATE INDEX idx_people_home_theaters_home_theater ON people_home_theaters(home_theater_id);
	`
	if _, err := db.Exec(migrationSQL); err != nil {
		t.Fatalf("applying catalog migration: %v", err)
	}

	return db
}

// testPerson returns a valid person with the given id and email.
func testPerson(id, email string) *Person {
	return &Person{
		ID:                   id,
		LastName:             "Silva",
		FirstName:            "Ana",
		CountryBirthLocation: "Brazil",
		Email:                email,
	}
}

// testTelevision returns a valid television with the given id.
func testTelevision(id string) *Television {
	return &Television{
		ID:    id,
		Brand: "Vony",
		Model: "X900",
		Value: 1299.99,
		Is3D:  true,
	}
}
