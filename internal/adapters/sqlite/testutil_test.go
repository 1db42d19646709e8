// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; do not hardcode CREATE TABLE statements in test
// files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/ladder/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedJobLevel inserts a test job level and returns its ID.
func seedJobLevel(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "l3"
	}
	if name == "" {
		name = "L3"
	}
	_, err := db.Exec(
		"INSERT INTO job_levels (id, name, primary_title, description_summary) VALUES (?, ?, 'Engineer', 'A test level')",
		id, name,
	)
	if err != nil {
		t.Fatalf("failed to seed job level: %v", err)
	}
	return id
}

// seedCriterion inserts a test criterion and returns its ID.
func seedCriterion(t *testing.T, db *sql.DB, id, category, subCategory string) string {
	t.Helper()
	if id == "" {
		id = "craft-technical-expertise"
	}
	if category == "" {
		category = "Craft"
	}
	if subCategory == "" {
		subCategory = "Technical Expertise"
	}
	_, err := db.Exec(
		"INSERT INTO criteria (id, category, sub_category) VALUES (?, ?, ?)",
		id, category, subCategory,
	)
	if err != nil {
		t.Fatalf("failed to seed criterion: %v", err)
	}
	return id
}
