package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models"
)

func TestListMastersNewestFirstPerUser(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	users := NewUserRepository(pool)
	author := testUser(t, users, "author")
	other := testUser(t, users, "other")
	repo := NewTemplateRepository(pool)

	first := &models.TemplateMaster{
		UserID:        author.ID,
		District:      "Gangtok",
		TemplateTitle: "City arrival",
		TravelTime:    "4h",
		Description:   "Airport pickup and local sightseeing",
	}
	require.NoError(t, repo.CreateMaster(ctx, first))
	t.Cleanup(func() { repo.DeleteMaster(ctx, first.ID, author.ID) })

	second := &models.TemplateMaster{
		UserID:        author.ID,
		District:      "Lachung",
		TemplateTitle: "Valley drive",
		TravelTime:    "6h",
		Description:   "North Sikkim transfer",
	}
	require.NoError(t, repo.CreateMaster(ctx, second))
	t.Cleanup(func() { repo.DeleteMaster(ctx, second.ID, author.ID) })

	masters, err := repo.ListMasters(ctx, author.ID, "")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(masters), 2)
	// Newest first regardless of district or title order.
	assert.Equal(t, second.ID, masters[0].ID)
	assert.Equal(t, first.ID, masters[1].ID)
	for _, m := range masters {
		assert.Equal(t, author.ID, m.UserID)
	}

	// Other users never see someone else's day templates.
	masters, err = repo.ListMasters(ctx, other.ID, "")
	require.NoError(t, err)
	assert.Empty(t, masters)
}
