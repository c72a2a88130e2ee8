package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"assettracker/internal/models"
	"assettracker/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.Asset{}, &models.Relationship{}))
	return New(store.New(gdb))
}

func TestCreateAssetValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cases := []struct {
		name string
		code string
		n    string
		typ  string
	}{
		{"empty code", "", "Laptop", "laptop"},
		{"empty name", "KHO1", "", "laptop"},
		{"empty type", "KHO1", "Laptop", ""},
		{"whitespace only", "   ", "Laptop", "laptop"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateAsset(ctx, tc.code, tc.n, tc.typ)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateAssetNormalizesCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateAsset(ctx, "kho999", "Dell Laptop", "laptop")
	require.NoError(t, err)
	assert.Equal(t, "KHO999", created.Code)
	assert.Equal(t, "Dell Laptop", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	// lookup is case-sensitive against the stored uppercase form
	_, err = svc.GetAssetDetail(ctx, "kho999")
	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)

	detail, err := svc.GetAssetDetail(ctx, "KHO999")
	require.NoError(t, err)
	assert.Equal(t, "KHO999", detail.Code)
}

func TestCreateAssetDuplicateAnyCasing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateAsset(ctx, "KHO123", "Laptop", "laptop")
	require.NoError(t, err)

	_, err = svc.CreateAsset(ctx, "kho123", "Other Laptop", "laptop")
	assert.ErrorIs(t, err, store.ErrDuplicateAsset)

	assets, err := svc.ListAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 1)
}

func TestGetAssetDetail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.GetAssetDetail(ctx, "NOPE")
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)

	_, err = svc.CreateAsset(ctx, "KHO123", "Laptop", "laptop")
	require.NoError(t, err)

	detail, err := svc.GetAssetDetail(ctx, "KHO123")
	require.NoError(t, err)
	assert.NotNil(t, detail.Children)
	assert.Empty(t, detail.Children)
	assert.NotNil(t, detail.Parents)
	assert.Empty(t, detail.Parents)
}

func TestAddParentRelationship(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateAsset(ctx, "KHO123", "Laptop", "laptop")
	require.NoError(t, err)
	_, err = svc.CreateAsset(ctx, "KHOWD111", "License", "license")
	require.NoError(t, err)

	rel, err := svc.AddParentRelationship(ctx, "KHOWD111", "KHO123")
	require.NoError(t, err)
	assert.Equal(t, "KHO123", rel.ParentCode)
	assert.Equal(t, "KHOWD111", rel.ChildCode)

	_, err = svc.AddParentRelationship(ctx, "KHOWD111", "KHO123")
	assert.ErrorIs(t, err, store.ErrDuplicateRelationship)

	child, err := svc.GetAssetDetail(ctx, "KHOWD111")
	require.NoError(t, err)
	require.Len(t, child.Parents, 1)
	assert.Equal(t, "KHO123", child.Parents[0].Code)

	parent, err := svc.GetAssetDetail(ctx, "KHO123")
	require.NoError(t, err)
	require.Len(t, parent.Children, 1)
	assert.Equal(t, "KHOWD111", parent.Children[0].Code)
}

func TestAddParentRelationshipNormalizesCodes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateAsset(ctx, "KHO123", "Laptop", "laptop")
	require.NoError(t, err)
	_, err = svc.CreateAsset(ctx, "KHOWD111", "License", "license")
	require.NoError(t, err)

	rel, err := svc.AddParentRelationship(ctx, "khowd111", "kho123")
	require.NoError(t, err)
	assert.Equal(t, "KHO123", rel.ParentCode)
	assert.Equal(t, "KHOWD111", rel.ChildCode)
}

func TestAddParentRelationshipSelf(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateAsset(ctx, "KHO123", "Laptop", "laptop")
	require.NoError(t, err)

	_, err = svc.AddParentRelationship(ctx, "KHO123", "kho123")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAddParentRelationshipMissingEndpoints(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateAsset(ctx, "KHO123", "Laptop", "laptop")
	require.NoError(t, err)

	var nferr *NotFoundError
	_, err = svc.AddParentRelationship(ctx, "MISSING", "KHO123")
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "child", nferr.Role)

	_, err = svc.AddParentRelationship(ctx, "KHO123", "MISSING")
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "parent", nferr.Role)

	// failed checks must not leave rows behind
	detail, err := svc.GetAssetDetail(ctx, "KHO123")
	require.NoError(t, err)
	assert.Empty(t, detail.Children)
	assert.Empty(t, detail.Parents)
}

func TestRemoveParentRelationshipIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateAsset(ctx, "KHO123", "Laptop", "laptop")
	require.NoError(t, err)
	_, err = svc.CreateAsset(ctx, "KHOWD111", "License", "license")
	require.NoError(t, err)
	_, err = svc.AddParentRelationship(ctx, "KHOWD111", "KHO123")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveParentRelationship(ctx, "khowd111", "kho123"))

	detail, err := svc.GetAssetDetail(ctx, "KHOWD111")
	require.NoError(t, err)
	assert.Empty(t, detail.Parents)

	// a second removal is still a success
	require.NoError(t, svc.RemoveParentRelationship(ctx, "KHOWD111", "KHO123"))
}
