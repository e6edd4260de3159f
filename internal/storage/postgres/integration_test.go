//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"invoicekeeper/internal/model"
	"invoicekeeper/internal/storage/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "invoicekeeper_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/invoicekeeper_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s, err := postgres.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Ping(ctx))

	_, err = s.Load(ctx, model.StorageKey)
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, s.Save(ctx, model.StorageKey, []byte(`{"invoices":[],"filters":["All"]}`)))
	got, err := s.Load(ctx, model.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"invoices":[],"filters":["All"]}`, string(got))

	require.NoError(t, s.Save(ctx, model.StorageKey, []byte(`{"invoices":[],"filters":["Paid"]}`)))
	got, err = s.Load(ctx, model.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"invoices":[],"filters":["Paid"]}`, string(got))
}
