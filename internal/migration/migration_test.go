package migration

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestMigrations(t *testing.T, migrations map[string]string) string {
	t.Helper()

	tempDir := t.TempDir()
	for filename, content := range migrations {
		path := filepath.Join(tempDir, filename)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test migration %s: %v", filename, err)
		}
	}
	return tempDir
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, os.DirFS(t.TempDir()))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("fresh database version = %d, want 0", version)
	}
}

func TestReadMigrationsSorted(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"002_second.sql": "CREATE TABLE b (id INTEGER);",
		"001_first.sql":  "CREATE TABLE a (id INTEGER);",
		"notes.txt":      "ignored",
	})

	runner := NewRunner(db, os.DirFS(dir))
	migrations, err := runner.ReadMigrations()
	if err != nil {
		t.Fatalf("ReadMigrations failed: %v", err)
	}

	if len(migrations) != 2 {
		t.Fatalf("got %d migrations, want 2", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "first" {
		t.Errorf("migrations[0] = %+v, want version 1 name first", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "second" {
		t.Errorf("migrations[1] = %+v, want version 2 name second", migrations[1])
	}
}

func TestReadMigrationsRejectsBadFilenames(t *testing.T) {
	db := setupTestDB(t)

	for name, files := range map[string]map[string]string{
		"no underscore":     {"001.sql": "SELECT 1;"},
		"bad version":       {"abc_test.sql": "SELECT 1;"},
		"zero version":      {"000_test.sql": "SELECT 1;"},
		"duplicate version": {"001_a.sql": "SELECT 1;", "001_b.sql": "SELECT 1;"},
	} {
		dir := setupTestMigrations(t, files)
		runner := NewRunner(db, os.DirFS(dir))
		if _, err := runner.ReadMigrations(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestApplyRunsPendingMigrations(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"001_create.sql": "CREATE TABLE items (id INTEGER PRIMARY KEY);",
		"002_alter.sql":  "ALTER TABLE items ADD COLUMN name TEXT;",
	})

	runner := NewRunner(db, os.DirFS(dir))

	var logged []string
	applied, err := runner.Apply(func(msg string) { logged = append(logged, msg) })
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if len(logged) != 2 {
		t.Errorf("logged %d messages, want 2", len(logged))
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version after apply = %d, want 2", version)
	}

	// Second apply is a no-op
	applied, err = runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second apply = %d migrations, want 0", applied)
	}

	// Both migrations took effect
	if _, err := db.Exec("INSERT INTO items (id, name) VALUES (1, 'x')"); err != nil {
		t.Errorf("schema incomplete after apply: %v", err)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"001_good.sql": "CREATE TABLE items (id INTEGER);",
		"002_bad.sql":  "THIS IS NOT SQL;",
	})

	runner := NewRunner(db, os.DirFS(dir))
	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("Apply should fail on invalid SQL")
	}
	if !strings.Contains(err.Error(), "migration 2") {
		t.Errorf("error = %v, want mention of migration 2", err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	// Version stays at the last good migration
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("version after failure = %d, want 1", version)
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"001_create.sql": "CREATE TABLE items (id INTEGER);",
	})

	runner := NewRunner(db, os.DirFS(dir))
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Simulate a database written by a newer build
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion should reject a newer schema")
	}
	if err := runner.ValidateVersion(); err != nil && !strings.Contains(err.Error(), "newer") {
		t.Errorf("error = %v, want mention of newer schema", err)
	}
}
