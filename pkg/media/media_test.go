package media

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_PutOpen(t *testing.T) {
	root := t.TempDir()
	store := NewLocal(root, "/media/")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "resume/cv.pdf", strings.NewReader("%PDF-1.4")))

	rc, size, err := store.Open(ctx, "resume/cv.pdf")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.EqualValues(t, 8, size)
}

func TestLocal_OpenMissing(t *testing.T) {
	store := NewLocal(t.TempDir(), "/media")

	_, _, err := store.Open(context.Background(), "resume/none.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = store.Open(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_KeysCannotEscapeRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "media")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("x"), 0o600))

	store := NewLocal(root, "/media")

	_, _, err := store.Open(context.Background(), "../secret.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_URL(t *testing.T) {
	store := NewLocal("unused", "/media")

	assert.Equal(t, "/media/projects/a.png", store.URL("projects/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", store.URL("https://cdn.example.com/a.png"))
	assert.Equal(t, "", store.URL(""))
}
