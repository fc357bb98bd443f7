package mongodb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mongoImage   = "mongo:7"
	mongoReplSet = "rs0"
)

var (
	mongoOnce sync.Once
	mongoURI  string
	mongoErr  error
)

// testMongoURI returns FORUM_TEST_MONGODB_URI when set. Otherwise it starts a
// single node replica set container, shared by every test in the package, so
// transactions work.
func testMongoURI(t *testing.T) string {
	t.Helper()

	if uri := os.Getenv("FORUM_TEST_MONGODB_URI"); uri != "" {
		return uri
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	mongoOnce.Do(func() {
		mongoURI, mongoErr = startMongoReplicaSet(context.Background())
	})
	if mongoErr != nil {
		t.Fatalf("start mongo container: %v", mongoErr)
	}
	return mongoURI
}

func startMongoReplicaSet(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mongoImage,
			ExposedPorts: []string{"27017/tcp"},
			Cmd:          []string{"--replSet", mongoReplSet, "--bind_ip_all"},
			WaitingFor: wait.ForLog("Waiting for connections").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", err
	}
	// Ryuk reaps the container when the test binary exits.

	initiate := fmt.Sprintf(
		"rs.initiate({_id: %q, members: [{_id: 0, host: 'localhost:27017'}]})", mongoReplSet)
	code, _, err := container.Exec(ctx, []string{"mongosh", "--quiet", "--eval", initiate})
	if err != nil {
		return "", fmt.Errorf("rs.initiate: %w", err)
	}
	if code != 0 {
		return "", fmt.Errorf("rs.initiate exited with %d", code)
	}

	if err := waitForPrimary(ctx, container); err != nil {
		return "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return "", err
	}

	// The member advertises localhost:27017, so skip topology discovery
	return fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, port.Port()), nil
}

func waitForPrimary(ctx context.Context, container testcontainers.Container) error {
	check := []string{"mongosh", "--quiet", "--eval", "quit(db.hello().isWritablePrimary ? 0 : 1)"}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		code, _, err := container.Exec(ctx, check)
		if err == nil && code == 0 {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("replica set %s has no primary after 30s", mongoReplSet)
}
