package db

import (
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"

	embeddedmigrations "github.com/terraincognita07/nutritrack/migrations"
	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrations(t *testing.T) {
	database := openTestDatabase(t)

	for _, table := range []string{"patients", "food_intakes", "nutri_coach_tips", "app_sessions"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	exists, err := columnAlreadyAdded(database, "ALTER TABLE patients ADD COLUMN push_token TEXT")
	if err != nil {
		t.Fatalf("inspect push_token column: %v", err)
	}
	if !exists {
		t.Fatal("expected push_token column to be added")
	}

	records := loadAppliedVersions(t, database)
	entries, err := fs.Glob(embeddedmigrations.Files, "*.sql")
	if err != nil {
		t.Fatalf("glob embedded migrations: %v", err)
	}
	if len(records) != len(entries) {
		t.Fatalf("expected %d applied migrations, got %d (%v)", len(entries), len(records), records)
	}
}

func TestOpenSQLiteMigrationsAreIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "nutritrack-idempotent.db")

	first, err := OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	before := loadAppliedVersions(t, first)
	firstSQLDB, err := first.DB()
	if err != nil {
		t.Fatalf("first sql db: %v", err)
	}
	if err := firstSQLDB.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	second, err := OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("second open sqlite: %v", err)
	}
	secondSQLDB, err := second.DB()
	if err != nil {
		t.Fatalf("second sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = secondSQLDB.Close()
	})

	after := loadAppliedVersions(t, second)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected migration records to stay unchanged, before=%v after=%v", before, after)
	}
}

func TestColumnAlreadyAddedSkipsExistingColumn(t *testing.T) {
	database := openTestDatabase(t)

	skip, err := columnAlreadyAdded(database, "ALTER TABLE patients ADD COLUMN phone_number TEXT")
	if err != nil {
		t.Fatalf("columnAlreadyAdded() unexpected error: %v", err)
	}
	if !skip {
		t.Fatal("expected existing column to be skipped")
	}

	skip, err = columnAlreadyAdded(database, "ALTER TABLE patients ADD COLUMN locale TEXT")
	if err != nil {
		t.Fatalf("columnAlreadyAdded() unexpected error: %v", err)
	}
	if skip {
		t.Fatal("expected missing column not to be skipped")
	}

	skip, err = columnAlreadyAdded(database, "CREATE INDEX idx_x ON patients(sex)")
	if err != nil || skip {
		t.Fatalf("expected non ALTER statement to run, skip=%v err=%v", skip, err)
	}
}

func TestSplitStatementsDropsBlankParts(t *testing.T) {
	t.Parallel()

	got := splitStatements("CREATE TABLE a (id INT);\n\n ;CREATE TABLE b (id INT);  ")
	want := []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitStatements() = %#v, want %#v", got, want)
	}
}

func loadAppliedVersions(t *testing.T, database *gorm.DB) []string {
	t.Helper()

	var versions []string
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version`).Scan(&versions).Error; err != nil {
		t.Fatalf("load schema_migrations: %v", err)
	}
	return versions
}
