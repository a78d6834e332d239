package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseIsIdempotent(t *testing.T) {
	t.Run("never-opened pool", func(t *testing.T) {
		db := NewPostgres("postgres://localhost/contacts")
		assert.NotPanics(t, func() {
			db.Close()
			db.Close()
		})
	})

	t.Run("close after failed open", func(t *testing.T) {
		db := NewPostgres("")
		_, err := db.Pool(context.Background())
		assert.Error(t, err)
		assert.NotPanics(t, func() {
			db.Close()
			db.Close()
		})
	})
}

func TestPoolRequiresConnString(t *testing.T) {
	db := NewPostgres("")
	pool, err := db.Pool(context.Background())
	assert.Nil(t, pool)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestPoolRejectsMalformedConnString(t *testing.T) {
	db := NewPostgres("://not-a-connection-string")
	pool, err := db.Pool(context.Background())
	assert.Nil(t, pool)
	assert.ErrorContains(t, err, "invalid connection string")
}
