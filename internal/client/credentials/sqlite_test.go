package credentials

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, db, err := Open(context.Background(), filepath.Join(t.TempDir(), "creds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store
}

func TestSQLiteStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Save(ctx, KindAccessToken, "T1"))
	require.NoError(t, store.Save(ctx, KindRefreshToken, "R1"))
	require.NoError(t, store.Save(ctx, KindMemberID, "42"))

	token, err := store.Load(ctx, KindAccessToken)
	require.NoError(t, err)
	require.Equal(t, "T1", token)

	id, err := MemberID(ctx, store)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestSQLiteStore_LoadAbsentKey(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	token, err := store.Load(ctx, KindAccessToken)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Save(ctx, KindAccessToken, "T1"))
	require.NoError(t, store.Save(ctx, KindAccessToken, "T2"))

	token, err := store.Load(ctx, KindAccessToken)
	require.NoError(t, err)
	require.Equal(t, "T2", token)
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Save(ctx, KindAccessToken, "T1"))
	require.NoError(t, store.Save(ctx, KindMemberID, "42"))
	require.NoError(t, store.Clear(ctx))

	require.False(t, HasValid(ctx, store))
	id, err := MemberID(ctx, store)
	require.NoError(t, err)
	require.Zero(t, id)
}

func TestHasValid(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.False(t, HasValid(ctx, store))

	require.NoError(t, store.Save(ctx, KindAccessToken, "   "))
	require.False(t, HasValid(ctx, store), "blank token is not valid")

	require.NoError(t, store.Save(ctx, KindAccessToken, "T1"))
	require.True(t, HasValid(ctx, store))
}

func TestMemberID_Unparsable(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Save(ctx, KindMemberID, "not-a-number"))
	id, err := MemberID(ctx, store)
	require.NoError(t, err)
	require.Zero(t, id)
}
