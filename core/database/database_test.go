package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:     "localhost",
			Port:     9999, // Unused port
			User:     "root",
			Password: "wrongpassword",
			Name:     "auctions",
			// Keep the failure fast; the default 30s would stall the suite.
			TimeoutSeconds: 2,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In-Memory", func(t *testing.T) {
		cfg := Config{
			Driver: "sqlite",
			Name:   ":memory:",
		}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}
