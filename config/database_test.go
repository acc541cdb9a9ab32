package config_test

import (
	"catalog-backend/config"
	"catalog-backend/models"
	"catalog-backend/testutil"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesActiveSlugIndex(t *testing.T) {
	db := testutil.NewDB(t)
	assert.True(t, db.Migrator().HasIndex(&models.Service{}, models.ActiveSlugIndex))

	// migrating an up-to-date schema is a no-op
	require.NoError(t, config.Migrate(db))
}

func TestMigrateReportsDuplicateLiveSlugs(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Migrator().DropIndex(&models.Service{}, models.ActiveSlugIndex))

	sc := testutil.CreateSubCategory(t, db, models.DeleteStatusActive)
	first := testutil.CreateService(t, db, sc, "boiler")
	testutil.CreateService(t, db, sc, "boiler")
	testutil.CreateService(t, db, sc, "gutter")

	err := config.Migrate(db)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Contains(t, err.Error(), models.ActiveSlugIndex)
	assert.Contains(t, err.Error(), `"boiler" (2 services)`)
	assert.NotContains(t, err.Error(), "gutter")
	assert.False(t, db.Migrator().HasIndex(&models.Service{}, models.ActiveSlugIndex))

	// once the duplicate is retired the index can be built
	first.MarkDeleted()
	require.NoError(t, db.Save(first).Error)
	require.NoError(t, config.Migrate(db))
	assert.True(t, db.Migrator().HasIndex(&models.Service{}, models.ActiveSlugIndex))
}
