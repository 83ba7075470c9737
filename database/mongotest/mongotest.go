// Package mongotest runs repository tests against a throwaway MongoDB
// container shared by every test of a package.
package mongotest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Image is the MongoDB image the container runs.
const Image = "mongo:7.0"

const opTimeout = 10 * time.Second

var (
	once      sync.Once
	container testcontainers.Container
	uri       string
	startErr  error
)

func start() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        Image,
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		startErr = fmt.Errorf("start mongo container: %w", err)
		return
	}
	container = c

	host, err := c.Host(ctx)
	if err != nil {
		startErr = fmt.Errorf("container host: %w", err)
		return
	}
	port, err := c.MappedPort(ctx, "27017/tcp")
	if err != nil {
		startErr = fmt.Errorf("container port: %w", err)
		return
	}
	uri = fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

// Database returns an empty database on the shared container, dropped when
// the test ends. The test is skipped in -short mode or without Docker.
func Database(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("mongo integration test skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(start)
	if startErr != nil {
		t.Skipf("mongo container unavailable: %v", startErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("servicehub_test_" + uuid.NewString())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

// Terminate stops the shared container. Call it from TestMain after m.Run.
func Terminate() {
	if container != nil {
		_ = container.Terminate(context.Background())
	}
}
