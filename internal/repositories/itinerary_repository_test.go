package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/database"
	"tripdesk/internal/models"
	"tripdesk/migrations"
)

// testPool connects to the database named by TEST_DATABASE_URL and applies
// the migrations. Tests that need it are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.NewMigrator(pool, migrations.FS).RunMigrations(ctx))
	return pool
}

func testUser(t *testing.T, repo *UserRepository, name string) *models.User {
	t.Helper()
	u := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s-%d@example.com", name, time.Now().UnixNano()),
		PasswordHash: "x",
		Group:        models.GroupUser,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func testItinerary(owner int, dayCount int) *models.Itinerary {
	it := &models.Itinerary{
		Title:     "Sikkim Circuit",
		CreatedBy: owner,
	}
	for i := 0; i < dayCount; i++ {
		it.Days = append(it.Days, models.ItineraryDay{
			FromLocation: "Gangtok",
			ToLocation:   "Lachung",
			Highlights:   []string{"Seven Sisters Falls"},
			Description:  []string{"Drive north"},
		})
	}
	return it
}

func TestItineraryRepositoryDayRows(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	users := NewUserRepository(pool)
	owner := testUser(t, users, "owner")
	repo := NewItineraryRepository(pool)

	it := testItinerary(owner.ID, 3)
	require.NoError(t, repo.Create(ctx, it))
	t.Cleanup(func() { repo.Delete(ctx, it.ID, 0) })

	got, err := repo.Get(ctx, it.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Days, 3)
	for i, d := range got.Days {
		assert.Equal(t, i+1, d.DayNumber)
	}

	// Shrinking the plan must leave exactly the new day rows behind.
	shrunk := testItinerary(owner.ID, 2)
	shrunk.ID = it.ID
	require.NoError(t, repo.Update(ctx, shrunk, owner.ID))

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM itinerary_days WHERE itinerary_id = $1`, it.ID).Scan(&count))
	assert.Equal(t, 2, count)

	got, err = repo.Get(ctx, it.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Days, 2)
	assert.Equal(t, 1, got.Days[0].DayNumber)
	assert.Equal(t, 2, got.Days[1].DayNumber)
}

func TestItineraryRepositoryOwnerScope(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	users := NewUserRepository(pool)
	owner := testUser(t, users, "owner")
	intruder := testUser(t, users, "intruder")
	repo := NewItineraryRepository(pool)

	it := testItinerary(owner.ID, 1)
	require.NoError(t, repo.Create(ctx, it))
	t.Cleanup(func() { repo.Delete(ctx, it.ID, 0) })

	// Another user's scope must not see or touch the row.
	_, err := repo.Get(ctx, it.ID, intruder.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	rewrite := testItinerary(intruder.ID, 1)
	rewrite.ID = it.ID
	err = repo.Update(ctx, rewrite, intruder.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	err = repo.Delete(ctx, it.ID, intruder.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	// The row is untouched and still owned by its creator.
	got, err := repo.Get(ctx, it.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.CreatedBy)
	assert.Equal(t, "Sikkim Circuit", got.Title)

	// Scope 0 is the admin view and reaches any owner's row.
	_, err = repo.Get(ctx, it.ID, 0)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, it.ID, owner.ID))
	_, err = repo.Get(ctx, it.ID, 0)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
