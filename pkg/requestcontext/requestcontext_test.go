package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"paynet/pkg/domain"
)

func TestAccessors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty context yields zero values", func(t *testing.T) {
		assert.Empty(t, RequestID(ctx))
		assert.Nil(t, Admin(ctx))
		assert.Empty(t, Token(ctx))
		assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
	})

	t.Run("stored values round-trip", func(t *testing.T) {
		pinned := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		admin := &domain.Admin{ID: "adm_1"}

		c := WithRequestID(ctx, "req-9")
		c = WithClientMetadata(c, "10.0.0.1", "curl/8.0")
		c = WithTime(c, pinned)
		c = WithSession(c, admin, "tok")

		assert.Equal(t, "req-9", RequestID(c))
		assert.Equal(t, "10.0.0.1", ClientIP(c))
		assert.Equal(t, "curl/8.0", UserAgent(c))
		assert.Equal(t, pinned, Now(c))
		assert.Same(t, admin, Admin(c))
		assert.Equal(t, "tok", Token(c))
	})
}
