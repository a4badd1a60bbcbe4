package order

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"fastorder/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresRepository(t *testing.T) {
	if os.Getenv("FASTORDER_INTEGRATION") == "" {
		t.Skip("FASTORDER_INTEGRATION not set, skipping container test")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "fastorder",
			"POSTGRES_PASSWORD": "fastorder",
			"POSTGRES_DB":       "fastorder",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer container.Terminate(ctx)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://fastorder:fastorder@%s/fastorder?sslmode=disable", endpoint)
	pool, err := db.ConnectPostgres(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewPostgresRepository(pool)

	older := &Record{
		Mode:             ModeNitro,
		CurrentOrders:    "1. farid : nasi 1",
		GeneratedMessage: "1. farid : nasi 1\n2. miftah : nasi 1, ceker",
		CreatedAt:        time.Now().Add(-time.Minute).UTC(),
	}
	newer := &Record{
		Mode:             ModeFirstTouch,
		ListMenu:         "Ceker\nTempe",
		GeneratedMessage: "1. miftah : nasi 1, ceker, tempe",
	}

	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))
	assert.NotEmpty(t, older.ID)

	records, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, ModeFirstTouch, records[0].Mode)
	assert.Equal(t, older.GeneratedMessage, records[1].GeneratedMessage)

	records, err = repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
