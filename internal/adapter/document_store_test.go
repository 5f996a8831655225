package adapter

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DocumentStore {
	t.Helper()
	chdir(t, t.TempDir())

	return NewDocumentStore(NewLocalProjectFSAdapter())
}

func TestDocumentStore_LoadReusesOpenCopy(t *testing.T) {
	store := newTestStore(t)

	writeFile(t, "app/models/person.rb", "class Person\nend\n")

	first, fresh, err := store.Load("app/models/person.rb")
	require.NoError(t, err)
	assert.True(t, fresh)

	second, fresh, err := store.Load("app/models/person.rb")
	require.NoError(t, err)
	assert.False(t, fresh)
	assert.Same(t, first, second)
}

func TestDocumentStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Load("app/models/person.rb")
	require.Error(t, err)
	assert.False(t, store.Open("app/models/person.rb"))
}

func TestDocumentStore_Release(t *testing.T) {
	t.Run("drops store-owned clean documents", func(t *testing.T) {
		store := newTestStore(t)

		writeFile(t, "app/models/person.rb", "x\n")

		_, _, err := store.Load("app/models/person.rb")
		require.NoError(t, err)

		store.Release("app/models/person.rb")
		assert.False(t, store.Open("app/models/person.rb"))
	})

	t.Run("keeps caller-registered documents", func(t *testing.T) {
		store := newTestStore(t)

		store.Register("app/models/person.rb", []byte("buffer\n"))

		store.Release("app/models/person.rb")
		assert.True(t, store.Open("app/models/person.rb"))
	})

	t.Run("keeps dirty documents", func(t *testing.T) {
		store := newTestStore(t)

		writeFile(t, "app/models/person.rb", "x\n")

		_, _, err := store.Load("app/models/person.rb")
		require.NoError(t, err)
		require.NoError(t, store.Apply("app/models/person.rb", []byte("y\n")))

		store.Release("app/models/person.rb")
		assert.True(t, store.Open("app/models/person.rb"))
	})
}

func TestDocumentStore_ApplyFlush(t *testing.T) {
	store := newTestStore(t)

	writeFile(t, "app/models/person.rb", "class Person\nend\n")

	doc, _, err := store.Load("app/models/person.rb")
	require.NoError(t, err)
	assert.False(t, doc.Dirty())

	require.NoError(t, store.Apply("app/models/person.rb", []byte("class Client\nend\n")))
	assert.True(t, doc.Dirty())

	require.NoError(t, store.Flush("app/models/person.rb"))
	assert.False(t, doc.Dirty())

	content, err := os.ReadFile("app/models/person.rb")
	require.NoError(t, err)
	assert.Equal(t, "class Client\nend\n", string(content))
}

func TestDocumentStore_ApplyUnopened(t *testing.T) {
	store := newTestStore(t)

	err := store.Apply("app/models/person.rb", []byte("x\n"))
	require.Error(t, err)
}

func TestDocumentStore_FlushCleanIsNoop(t *testing.T) {
	store := newTestStore(t)

	writeFile(t, "app/models/person.rb", "on disk\n")

	// registered buffer content differs from disk but was never applied
	store.Register("app/models/person.rb", []byte("in buffer\n"))
	require.NoError(t, store.Flush("app/models/person.rb"))

	content, err := os.ReadFile("app/models/person.rb")
	require.NoError(t, err)
	assert.Equal(t, "on disk\n", string(content))
}

func TestDocumentStore_FlushPreservesPermissions(t *testing.T) {
	store := newTestStore(t)

	writeFile(t, "bin/deploy.rb", "exec\n")
	require.NoError(t, os.Chmod("bin/deploy.rb", 0o755))

	_, _, err := store.Load("bin/deploy.rb")
	require.NoError(t, err)
	require.NoError(t, store.Apply("bin/deploy.rb", []byte("exec harder\n")))
	require.NoError(t, store.Flush("bin/deploy.rb"))

	info, err := os.Stat("bin/deploy.rb")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestDocumentStore_Rekey(t *testing.T) {
	store := newTestStore(t)

	writeFile(t, "app/models/person.rb", "x\n")

	doc, _, err := store.Load("app/models/person.rb")
	require.NoError(t, err)

	store.Rekey("app/models/person.rb", "app/models/client.rb")

	assert.False(t, store.Open("app/models/person.rb"))
	assert.True(t, store.Open("app/models/client.rb"))
	assert.Equal(t, "app/models/client.rb", string(doc.Path))
}
