package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All
// repository tests create their in-memory database via GetSchemaSQL(), so
// a repository referencing a column that does not exist here fails
// immediately with "no such column".
//
// Entities are created once and read many times; there is no update path.
// job_levels and criteria are the dimension tables of the matrix,
// capabilities is the fact table. Duplicate (job_level_id, criterion_id)
// pairs are tolerated rather than rejected; the assembler shows the last
// one (see DESIGN.md).
const SchemaSQL = `
-- Job levels (career ladder rungs; no ordering column by design)
CREATE TABLE IF NOT EXISTS job_levels (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	primary_title TEXT NOT NULL,
	description_summary TEXT NOT NULL,
	trajectory_note TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Criteria (evaluation axes, grouped by category / sub-category strings)
CREATE TABLE IF NOT EXISTS criteria (
	id TEXT PRIMARY KEY,
	category TEXT NOT NULL,
	sub_category TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Capabilities (cell content for one job level x criterion pair)
CREATE TABLE IF NOT EXISTS capabilities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	job_level_id TEXT NOT NULL,
	criterion_id TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (job_level_id) REFERENCES job_levels(id),
	FOREIGN KEY (criterion_id) REFERENCES criteria(id)
);

-- Edit history (append-only change log)
CREATE TABLE IF NOT EXISTS edit_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Overview content (goals and principles with display rank)
CREATE TABLE IF NOT EXISTS overview_content (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL CHECK(type IN ('goal', 'principle')),
	content TEXT NOT NULL,
	display_order INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}
