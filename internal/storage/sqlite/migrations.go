package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Camps must exist before the tables that reference them.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    role TEXT NOT NULL CHECK (role IN ('admin','coordinator','leader','parent')),
    enabled INTEGER NOT NULL DEFAULT 1,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS camps (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    location TEXT NOT NULL,
    area TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL CHECK (type IN ('day','overnight','expedition')),
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    daily_food_units_planned INTEGER NOT NULL DEFAULT 0,
    default_food_units_per_camper_per_day INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS campers (
    id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    dob TEXT NOT NULL,
    emergency_contact TEXT NOT NULL DEFAULT ''
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_camper_identity
    ON campers(lower(first_name), lower(last_name), dob);

CREATE TABLE IF NOT EXISTS camp_campers (
    id TEXT PRIMARY KEY,
    camp_id TEXT NOT NULL,
    camper_id TEXT NOT NULL,
    food_units_per_day INTEGER NOT NULL DEFAULT 0,
    UNIQUE (camp_id, camper_id),
    FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE,
    FOREIGN KEY (camper_id) REFERENCES campers(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS activities (
    id TEXT PRIMARY KEY,
    camp_id TEXT NOT NULL,
    name TEXT NOT NULL,
    date TEXT NOT NULL,
    FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS camper_activity (
    activity_id TEXT NOT NULL,
    camper_id TEXT NOT NULL,
    PRIMARY KEY (activity_id, camper_id),
    FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE,
    FOREIGN KEY (camper_id) REFERENCES campers(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS stock_topups (
    id TEXT PRIMARY KEY,
    camp_id TEXT NOT NULL,
    delta_daily_units INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS leader_assignments (
    id TEXT PRIMARY KEY,
    leader_user_id TEXT NOT NULL,
    camp_id TEXT NOT NULL,
    UNIQUE (leader_user_id, camp_id),
    FOREIGN KEY (leader_user_id) REFERENCES users(id) ON DELETE RESTRICT,
    FOREIGN KEY (camp_id) REFERENCES camps(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_camp_campers_camp_id ON camp_campers(camp_id);
CREATE INDEX IF NOT EXISTS idx_activities_camp_id ON activities(camp_id);
CREATE INDEX IF NOT EXISTS idx_camper_activity_activity_id ON camper_activity(activity_id);
CREATE INDEX IF NOT EXISTS idx_stock_topups_camp_id ON stock_topups(camp_id);
CREATE INDEX IF NOT EXISTS idx_leader_assignments_leader ON leader_assignments(leader_user_id);

INSERT OR IGNORE INTO settings (key, value) VALUES ('daily_pay_rate', '0');
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
