package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paynet/internal/session/models"
	"paynet/pkg/platform/sentinel"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is not found", func(t *testing.T) {
		_, err := NewFile(t.TempDir()).Get(ctx, FileKey)
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
	})

	t.Run("round trip under the admin_token key", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested")
		st := NewFile(dir)

		require.NoError(t, st.Save(ctx, FileKey, models.Record{Token: "tok.en.sig", Role: "admin"}, 0))

		raw, err := os.ReadFile(st.Path())
		require.NoError(t, err)
		assert.Contains(t, string(raw), "admin_token: tok.en.sig")

		info, err := os.Stat(st.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		got, err := st.Get(ctx, FileKey)
		require.NoError(t, err)
		assert.Equal(t, "tok.en.sig", got.Token)
		assert.Equal(t, "admin", got.Role)
	})

	t.Run("delete removes the file and tolerates absence", func(t *testing.T) {
		st := NewFile(t.TempDir())
		require.NoError(t, st.Save(ctx, FileKey, models.Record{Token: "tok"}, 0))

		require.NoError(t, st.Delete(ctx, FileKey))
		require.NoError(t, st.Delete(ctx, FileKey))

		_, err := st.Get(ctx, FileKey)
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
	})

	t.Run("unparseable file is reported as malformed", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("admin_token: [unterminated\n"), 0o600))

		_, err := NewFile(dir).Get(ctx, FileKey)
		assert.True(t, errors.Is(err, sentinel.ErrMalformed))
		assert.False(t, errors.Is(err, sentinel.ErrNotFound))
	})

	t.Run("file without token is treated as absent", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("role: admin\n"), 0o600))

		_, err := NewFile(dir).Get(ctx, FileKey)
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
	})
}
