package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Ids are TEXT, not UUID: seeded fixtures use readable ids like "obra_001"
// alongside generated UUIDs. List-valued fields are JSONB.
var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         TEXT        PRIMARY KEY,
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL,
  role       TEXT        NOT NULL,
  obra_ids   JSONB       NOT NULL DEFAULT '[]',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_obras",
		SQL: `CREATE TABLE IF NOT EXISTS obras (
  id                TEXT        PRIMARY KEY,
  name              TEXT        NOT NULL,
  location          TEXT        NOT NULL,
  description       TEXT        NOT NULL,
  start_date        TIMESTAMPTZ NOT NULL,
  expected_end_date TIMESTAMPTZ NOT NULL,
  status            TEXT        NOT NULL DEFAULT 'active',
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_diary_entries",
		SQL: `CREATE TABLE IF NOT EXISTS diary_entries (
  id             TEXT        PRIMARY KEY,
  obra_id        TEXT        NOT NULL,
  user_id        TEXT        NOT NULL,
  user_name      TEXT        NOT NULL,
  date           TIMESTAMPTZ NOT NULL,
  weather        TEXT        NOT NULL,
  temperature    TEXT        NOT NULL,
  workers_count  INTEGER     NOT NULL CHECK (workers_count >= 0),
  activities     TEXT        NOT NULL,
  materials_used TEXT        NOT NULL,
  equipment_used TEXT        NOT NULL,
  incidents      TEXT        NOT NULL DEFAULT '',
  observations   TEXT        NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_photos",
		SQL: `CREATE TABLE IF NOT EXISTS photos (
  id          TEXT             PRIMARY KEY,
  obra_id     TEXT             NOT NULL,
  user_id     TEXT             NOT NULL,
  user_name   TEXT             NOT NULL,
  title       TEXT             NOT NULL,
  description TEXT             NOT NULL,
  image_data  TEXT             NOT NULL,
  latitude    DOUBLE PRECISION,
  longitude   DOUBLE PRECISION,
  timestamp   TIMESTAMPTZ      NOT NULL,
  created_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_material_requests",
		SQL: `CREATE TABLE IF NOT EXISTS material_requests (
  id             TEXT             PRIMARY KEY,
  obra_id        TEXT             NOT NULL,
  user_id        TEXT             NOT NULL,
  user_name      TEXT             NOT NULL,
  material_name  TEXT             NOT NULL,
  quantity       DOUBLE PRECISION NOT NULL CHECK (quantity > 0),
  unit           TEXT             NOT NULL,
  priority       TEXT             NOT NULL,
  justification  TEXT             NOT NULL,
  status         TEXT             NOT NULL DEFAULT 'pending',
  requested_date TIMESTAMPTZ      NOT NULL,
  needed_date    TIMESTAMPTZ      NOT NULL,
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_service_measurements",
		SQL: `CREATE TABLE IF NOT EXISTS service_measurements (
  id             TEXT             PRIMARY KEY,
  obra_id        TEXT             NOT NULL,
  user_id        TEXT             NOT NULL,
  user_name      TEXT             NOT NULL,
  service_name   TEXT             NOT NULL,
  description    TEXT             NOT NULL,
  quantity       DOUBLE PRECISION NOT NULL CHECK (quantity > 0),
  unit           TEXT             NOT NULL,
  status         TEXT             NOT NULL,
  start_date     TIMESTAMPTZ      NOT NULL,
  end_date       TIMESTAMPTZ,
  photos         JSONB            NOT NULL DEFAULT '[]',
  signature_data TEXT,
  observations   TEXT             NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_notifications",
		SQL: `CREATE TABLE IF NOT EXISTS notifications (
  id         TEXT        PRIMARY KEY,
  obra_id    TEXT        NOT NULL,
  user_id    TEXT        NOT NULL,
  title      TEXT        NOT NULL,
  message    TEXT        NOT NULL,
  type       TEXT        NOT NULL,
  is_read    BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_diary_entries_obra_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_diary_entries_obra_created ON diary_entries (obra_id, created_at DESC);`,
	},
	{
		Name: "create_index_photos_obra_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_photos_obra_created ON photos (obra_id, created_at DESC);`,
	},
	{
		Name: "create_index_material_requests_obra_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_material_requests_obra_created ON material_requests (obra_id, created_at DESC);`,
	},
	{
		Name: "create_index_material_requests_obra_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_material_requests_obra_status ON material_requests (obra_id, status);`,
	},
	{
		Name: "create_index_service_measurements_obra_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_service_measurements_obra_created ON service_measurements (obra_id, created_at DESC);`,
	},
	{
		Name: "create_index_notifications_obra_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_notifications_obra_created ON notifications (obra_id, created_at DESC);`,
	},
	{
		Name: "create_index_notifications_obra_unread",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_notifications_obra_unread ON notifications (obra_id) WHERE NOT is_read;`,
	},
}

// EnsureMigrated checks if the 'obras' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.obras') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
