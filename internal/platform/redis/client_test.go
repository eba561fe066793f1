package redis

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paynet/internal/platform/config"
)

func TestNew(t *testing.T) {
	t.Run("empty url means redis is disabled", func(t *testing.T) {
		c, err := New(context.Background(), config.RedisConfig{}, nil)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("malformed url is rejected before dialing", func(t *testing.T) {
		_, err := New(context.Background(), config.RedisConfig{URL: "mysql://nope"}, NewPoolMetrics(prometheus.NewRegistry()))
		assert.ErrorContains(t, err, "parse redis URL")
	})
}
