package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoad(t *testing.T) {
	store := NewStore()

	t.Run("AcceptsValidRows", func(t *testing.T) {
		count := store.Load([]Row{
			{Name: "Jane", Email: "jane@example.com", Phone: "+91 9876543210"},
			{Name: "Bob", Email: "BOB@Example.COM ", Phone: "0123456789"},
		})
		require.Equal(t, 2, count)

		entry, ok := store.Lookup("jane@example.com")
		require.True(t, ok)
		assert.Equal(t, "Jane", entry.Name)
		assert.Equal(t, "9876543210", entry.Secret, "secret is the last 10 characters of the raw phone")

		entry, ok = store.Lookup("bob@example.com")
		require.True(t, ok, "emails are lowercased and trimmed on load")
		assert.Equal(t, "0123456789", entry.Secret)
	})

	t.Run("DropsBadRowsSilently", func(t *testing.T) {
		count := store.Load([]Row{
			{Name: "NoAt", Email: "not-an-email", Phone: "9876543210"},
			{Name: "ShortPhone", Email: "short@example.com", Phone: "123"},
			{Name: "OK", Email: "ok@example.com", Phone: "1112223334"},
		})
		assert.Equal(t, 1, count)

		_, ok := store.Lookup("short@example.com")
		assert.False(t, ok)
	})

	t.Run("NameDefaultsToLocalPart", func(t *testing.T) {
		store.Load([]Row{{Email: "carol@example.com", Phone: "5556667778"}})
		entry, ok := store.Lookup("carol@example.com")
		require.True(t, ok)
		assert.Equal(t, "carol", entry.Name)
	})

	t.Run("ReloadReplacesEverything", func(t *testing.T) {
		store.Load([]Row{{Email: "old@example.com", Phone: "1234567890"}})
		store.Load([]Row{{Email: "new@example.com", Phone: "1234567890"}})

		_, ok := store.Lookup("old@example.com")
		assert.False(t, ok, "load has no merge semantics")
		_, ok = store.Lookup("new@example.com")
		assert.True(t, ok)
		assert.Equal(t, 1, store.Len())
	})
}

func TestStoreLookupNormalizesQuery(t *testing.T) {
	store := NewStore()
	store.Load([]Row{{Email: "a@x.com", Phone: "9999999999"}})

	entry, ok := store.Lookup("  A@X.com ")
	require.True(t, ok)
	assert.Equal(t, "9999999999", entry.Secret)
}

func TestStoreEntriesOrderedByEmail(t *testing.T) {
	store := NewStore()
	store.Load([]Row{
		{Email: "c@x.com", Phone: "1111111111"},
		{Email: "a@x.com", Phone: "2222222222"},
		{Email: "b@x.com", Phone: "3333333333"},
	})

	entries := store.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "a@x.com", entries[0].Email)
	assert.Equal(t, "b@x.com", entries[1].Email)
	assert.Equal(t, "c@x.com", entries[2].Email)
}
