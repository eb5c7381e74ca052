package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.MetricsAddr = "127.0.0.1:0"
	c.LogLevel = "error"
	return c
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_RunFailsOnBadAddress(t *testing.T) {
	c := testConfig()
	c.EndpointAddrGRPC = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	select {
	case err := <-runAsync(app):
		assert.ErrorContains(t, err, "grpc server")
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after server failure")
	}
}

func TestNewApp_Rejects(t *testing.T) {
	c := testConfig()
	c.TokenAlgorithm = "none"
	_, err := NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "token codec")

	c = testConfig()
	c.Storage = "cassandra"
	_, err = NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "storage init")
}

func runAsync(app *App) <-chan error {
	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	return done
}
