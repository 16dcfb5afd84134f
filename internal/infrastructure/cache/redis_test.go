package cache

import (
	"context"
	"io"
	"net"
	"testing"

	"go-clinic-management/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := NewRedisClient(context.Background(), config.RedisConfig{Host: host, Port: port}, log)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	mr.CheckGet(t, "k", "v")
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	mr.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)

	_, err = NewRedisClient(context.Background(), config.RedisConfig{Host: host, Port: port}, log)
	assert.Error(t, err)
}
