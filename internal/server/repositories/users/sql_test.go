package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
	"github.com/dmitrijs2005/apikeeper/internal/testutil"
)

func TestSQLRepository_CreateAndList(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewSQLRepository(db)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	res, err := db.Exec(`INSERT INTO api_keys (key_value, start_date, out_of_date, status) VALUES (?, ?, ?, ?)`,
		"APIKEY_S3CR3T_one", start, start.Add(time.Hour), "Active")
	require.NoError(t, err)
	keyID, err := res.LastInsertId()
	require.NoError(t, err)

	u, err := repo.Create(ctx, &models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", KeyID: keyID})
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	rows, err := repo.ListWithKeys(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, u.ID, rows[0].UserID)
	assert.Equal(t, "APIKEY_S3CR3T_one", rows[0].KeyValue)
	assert.Equal(t, models.StatusActive, rows[0].Status)
	assert.True(t, rows[0].ExpiryDate.Equal(start.Add(time.Hour)))
}

func TestSQLRepository_DuplicateEmail(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewSQLRepository(db)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	var keyIDs []int64
	for _, v := range []string{"APIKEY_S3CR3T_a", "APIKEY_S3CR3T_b"} {
		res, err := db.Exec(`INSERT INTO api_keys (key_value, start_date, out_of_date, status) VALUES (?, ?, ?, ?)`,
			v, start, start.Add(time.Hour), "Active")
		require.NoError(t, err)
		id, err := res.LastInsertId()
		require.NoError(t, err)
		keyIDs = append(keyIDs, id)
	}

	_, err := repo.Create(ctx, &models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", KeyID: keyIDs[0]})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", KeyID: keyIDs[1]})
	assert.ErrorIs(t, err, common.ErrDuplicateUser)
	assert.Equal(t, 1, testutil.CountRows(t, db, "users"))
}

func TestSQLRepository_ForeignKeyEnforced(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	_, err := NewSQLRepository(db).Create(context.Background(),
		&models.User{FirstName: "No", LastName: "Key", Email: "nokey@example.com", KeyID: 999})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDuplicateUser)
}
