//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := NewMongoDB(getSharedContainerURI(), sanitizeDBName(t.Name()))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, "optimization_runs", db.Runs.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("query indexes exist", func(t *testing.T) {
		cursor, err := db.Runs.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Contains(t, names, "request_id_1")
		assert.Contains(t, names, "algorithm_1_created_at_-1")
	})

	t.Run("reconnecting keeps existing indexes", func(t *testing.T) {
		again, err := NewMongoDB(getSharedContainerURI(), sanitizeDBName(t.Name()))
		require.NoError(t, err)
		assert.NoError(t, again.Close(ctx))
	})

	t.Run("TTL can be cleared before it was set", func(t *testing.T) {
		assert.NoError(t, db.SetRunsTTL(ctx, 0))
	})
}

func TestMongoDB_HealthCheckAfterClose_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := NewMongoDB(getSharedContainerURI(), sanitizeDBName(t.Name()))
	require.NoError(t, err)
	require.NoError(t, db.Close(ctx))

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	assert.Error(t, db.HealthCheck(ctx))
}
