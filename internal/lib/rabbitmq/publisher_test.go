package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	rmq "github.com/mkravelev/maas-platform/internal/rabbitmq"
)

func setupRabbitMQ(ctx context.Context, t *testing.T) (string, func()) {
	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3-management",
		ExposedPorts: []string{"5672/tcp"},
		Env: map[string]string{
			"RABBITMQ_DEFAULT_USER": "guest",
			"RABBITMQ_DEFAULT_PASS": "guest",
		},
		WaitingFor: wait.ForListeningPort("5672/tcp").
			WithStartupTimeout(2 * time.Minute),
	}

	rmqContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := rmqContainer.Host(ctx)
	require.NoError(t, err)
	port, err := rmqContainer.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)

	cleanup := func() {
		if err := rmqContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	}

	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port()), cleanup
}

func TestPublish(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	amqpURI, cleanup := setupRabbitMQ(ctx, t)
	defer cleanup()

	conn, err := rmq.Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close connection: %v", err)
		}
	}()

	ch, err := rmq.SetupChannel(conn, rmq.DefaultQueues)
	require.NoError(t, err)
	defer func() {
		if err := ch.Close(); err != nil {
			t.Errorf("failed to close channel: %v", err)
		}
	}()

	publisher := NewPublisher(ch, rmq.Exchange)

	type TestAlert struct {
		PackageID int64   `json:"package_id"`
		UsedHours float64 `json:"used_hours"`
	}

	t.Run("success publish and consume", func(t *testing.T) {
		msg := TestAlert{PackageID: 7, UsedHours: 25}

		err := publisher.Publish("package.overloaded", msg)
		require.NoError(t, err)

		deliveries, err := ch.Consume("package_alerts", "test-consumer", true, false, false, false, nil)
		require.NoError(t, err)

		select {
		case d := <-deliveries:
			var got TestAlert
			err := json.Unmarshal(d.Body, &got)
			require.NoError(t, err)
			assert.Equal(t, msg, got)
			assert.Equal(t, "application/json", d.ContentType)
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for message")
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		// В json marshal нельзя сериализовать канал
		badMsg := struct {
			Ch chan int `json:"ch"`
		}{
			Ch: make(chan int),
		}

		err := publisher.Publish("package.overloaded", badMsg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rabbitmq.Publish")
	})
}
