package postgres

import (
	"testing"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestRetryConnectOnFailed_NoRetryWhenHealthy(t *testing.T) {
	DB_Status = true
	defer func() { DB_Status = false }()

	var db *sqlx.DB
	// Must return immediately without dialing anything; a real attempt against
	// this empty config would keep retrying and never return.
	RetryConnectOnFailed(time.Millisecond, &db, config.PostgresConfig{})

	assert.Nil(t, db)
}
