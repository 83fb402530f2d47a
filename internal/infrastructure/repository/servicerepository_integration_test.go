package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/infrastructure/persistence/models"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ServiceModel{},
		&models.FeatureModel{},
		&models.PricingOptionModel{},
		&models.PricingOptionFeatureModel{},
		&models.QuestionModel{},
		&models.QuestionOptionModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestService(t *testing.T) *catalog.Service {
	t.Helper()

	svc, err := catalog.NewService("Window Cleaning", "Exterior window washing")
	require.NoError(t, err)

	_, err = svc.AddFeature("Screens", "Screen wipe down")
	require.NoError(t, err)
	_, err = svc.AddFeature("Tracks", "Track detail")
	require.NoError(t, err)

	_, err = svc.AddPricingOption("Basic", decimal.Zero, decimal.NewFromInt(100), []catalog.FeatureInclusion{
		{FeatureName: "Screens", Included: true},
		{FeatureName: "Tracks", Included: false},
	})
	require.NoError(t, err)
	_, err = svc.AddPricingOption("Premium", decimal.NewFromInt(10), decimal.NewFromInt(150), []catalog.FeatureInclusion{
		{FeatureName: "Screens", Included: true},
		{FeatureName: "Tracks", Included: true},
	})
	require.NoError(t, err)

	q, err := svc.AddQuestion("How many floors?", catalog.QuestionTypeChoice, decimal.Zero, true, 1)
	require.NoError(t, err)
	_, err = q.AddOption("1", "One story", decimal.Zero, 1)
	require.NoError(t, err)
	_, err = q.AddOption("2", "Two stories", decimal.NewFromInt(25), 2)
	require.NoError(t, err)

	_, err = svc.AddQuestion("Gutter cleaning?", catalog.QuestionTypeBoolean, decimal.NewFromInt(40), false, 2)
	require.NoError(t, err)

	return svc
}

func TestServiceRepository_Create(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewServiceRepository(db, newTestLogger())
	ctx := context.Background()

	t.Run("create assigns ids through the whole tree", func(t *testing.T) {
		svc := createTestService(t)

		err := repo.Create(ctx, svc)
		require.NoError(t, err)
		assert.NotZero(t, svc.ID())
		for _, f := range svc.Features() {
			assert.NotZero(t, f.ID())
		}
		for _, po := range svc.PricingOptions() {
			assert.NotZero(t, po.ID())
		}
		for _, q := range svc.Questions() {
			assert.NotZero(t, q.ID())
			for _, opt := range q.Options() {
				assert.NotZero(t, opt.ID())
			}
		}
	})

	t.Run("round trip preserves children", func(t *testing.T) {
		svc := createTestService(t)
		require.NoError(t, repo.Create(ctx, svc))

		found, err := repo.GetByID(ctx, svc.ID())
		require.NoError(t, err)
		assert.Equal(t, "Window Cleaning", found.Name())
		assert.Len(t, found.Features(), 2)
		assert.Len(t, found.PricingOptions(), 2)
		assert.Len(t, found.Questions(), 2)

		premium := found.PricingOptions()[1]
		assert.Equal(t, "Premium", premium.Name())
		assert.ElementsMatch(t, []string{"Screens", "Tracks"}, premium.IncludedFeatureNames())

		floors := found.Questions()[0]
		assert.Equal(t, catalog.QuestionTypeChoice, floors.Type())
		require.Len(t, floors.Options(), 2)
		assert.Equal(t, "One story", floors.Options()[0].Label())
	})
}

func TestServiceRepository_GetByID(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewServiceRepository(db, newTestLogger())
	ctx := context.Background()

	t.Run("missing service", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.Nil(t, found)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestServiceRepository_Update(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewServiceRepository(db, newTestLogger())
	ctx := context.Background()

	t.Run("update replaces the children set", func(t *testing.T) {
		svc := createTestService(t)
		require.NoError(t, repo.Create(ctx, svc))

		require.NoError(t, svc.Rename("Window & Gutter Cleaning", "Full exterior package"))
		svc.ClearChildren()
		_, err := svc.AddFeature("Gutters", "Gutter flush")
		require.NoError(t, err)
		_, err = svc.AddPricingOption("Standard", decimal.Zero, decimal.NewFromInt(200), []catalog.FeatureInclusion{
			{FeatureName: "Gutters", Included: true},
		})
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, svc))

		found, err := repo.GetByID(ctx, svc.ID())
		require.NoError(t, err)
		assert.Equal(t, "Window & Gutter Cleaning", found.Name())
		assert.Len(t, found.Features(), 1)
		assert.Len(t, found.PricingOptions(), 1)
		assert.Len(t, found.Questions(), 0)
	})

	t.Run("update missing service", func(t *testing.T) {
		svc := createTestService(t)
		require.NoError(t, svc.SetID(99999))

		err := repo.Update(ctx, svc)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestServiceRepository_List(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewServiceRepository(db, newTestLogger())
	ctx := context.Background()

	active := createTestService(t)
	require.NoError(t, repo.Create(ctx, active))

	inactive, err := catalog.NewService("Pressure Washing", "Driveways and patios")
	require.NoError(t, err)
	inactive.ToggleActive()
	require.NoError(t, repo.Create(ctx, inactive))

	t.Run("list returns everything", func(t *testing.T) {
		services, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, services, 2)
	})

	t.Run("list active filters disabled services", func(t *testing.T) {
		services, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, active.ID(), services[0].ID())
	})
}

func TestServiceRepository_UpdateActive(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewServiceRepository(db, newTestLogger())
	ctx := context.Background()

	svc := createTestService(t)
	require.NoError(t, repo.Create(ctx, svc))

	require.NoError(t, repo.UpdateActive(ctx, svc.ID(), false))

	found, err := repo.GetByID(ctx, svc.ID())
	require.NoError(t, err)
	assert.False(t, found.IsActive())

	err = repo.UpdateActive(ctx, 99999, true)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestServiceRepository_Delete(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := NewServiceRepository(db, newTestLogger())
	ctx := context.Background()

	t.Run("delete removes the tree", func(t *testing.T) {
		svc := createTestService(t)
		require.NoError(t, repo.Create(ctx, svc))

		require.NoError(t, repo.Delete(ctx, svc.ID()))

		_, err := repo.GetByID(ctx, svc.ID())
		assert.True(t, errors.IsNotFoundError(err))

		var featureCount int64
		require.NoError(t, db.Model(&models.FeatureModel{}).Where("service_id = ?", svc.ID()).Count(&featureCount).Error)
		assert.Zero(t, featureCount)

		var optionCount int64
		require.NoError(t, db.Model(&models.QuestionOptionModel{}).Count(&optionCount).Error)
		assert.Zero(t, optionCount)
	})

	t.Run("delete missing service", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
