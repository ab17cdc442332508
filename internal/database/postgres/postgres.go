package postgres

import (
	"fmt"
	"log"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB_Status bool

const schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS drones (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'IDLE',
	battery_level INTEGER NOT NULL DEFAULT 100,
	location TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS missions (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	area GEOMETRY(Polygon, 4326),
	flight_path GEOMETRY(LineString, 4326),
	status TEXT NOT NULL DEFAULT 'PLANNED',
	start_time TIMESTAMPTZ,
	end_time TIMESTAMPTZ,
	drone_id UUID REFERENCES drones(id),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS waypoints (
	id UUID PRIMARY KEY,
	mission_id UUID NOT NULL REFERENCES missions(id),
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	altitude DOUBLE PRECISION NOT NULL DEFAULT 0,
	direction DOUBLE PRECISION NOT NULL DEFAULT 0,
	sensors TEXT NOT NULL DEFAULT '',
	frequency DOUBLE PRECISION NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'PENDING',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS telemetry (
	id UUID PRIMARY KEY,
	drone_id UUID NOT NULL REFERENCES drones(id),
	mission_id UUID REFERENCES missions(id),
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	altitude DOUBLE PRECISION NOT NULL DEFAULT 0,
	battery INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT '',
	timestamp TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_missions_status ON missions(status);
CREATE INDEX IF NOT EXISTS idx_waypoints_mission_id ON waypoints(mission_id);
CREATE INDEX IF NOT EXISTS idx_telemetry_drone_id ON telemetry(drone_id);
CREATE INDEX IF NOT EXISTS idx_telemetry_mission_id ON telemetry(mission_id);
CREATE INDEX IF NOT EXISTS idx_telemetry_timestamp ON telemetry(timestamp DESC);
`

func ConnectAndCreateDB(cfg config.PostgresConfig) (*sqlx.DB, error) {
	targetConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBname)

	db, err := sqlx.Connect("postgres", targetConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to target database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping target database: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	DB_Status = true

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func RetryConnectOnFailed(wait_amount time.Duration, db **sqlx.DB, cfg config.PostgresConfig) {
	if DB_Status {
		log.Printf("false database lost connnection alert! abort retry")
		return
	}

	if *db != nil {
		cur_db := *db
		err := cur_db.Ping()
		if err == nil {
			log.Printf("database connection is healthy, no retry needed")
			return
		}
		log.Printf("failed to ping target database: %s, retry db connection\n", err)
	} else {
		log.Printf("database connection is nil, attempting to reconnect...")
	}

	newDB, err := ConnectAndCreateDB(cfg)
	if err == nil {
		*db = newDB
		log.Printf("database retry connection successfully\n")
		return
	}
	log.Printf("failed to retry connect database: %s, next retry in %v\n", err, wait_amount)
	time.Sleep(wait_amount)

	RetryConnectOnFailed(wait_amount, db, cfg)
}
