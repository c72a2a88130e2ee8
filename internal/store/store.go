package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"assettracker/internal/models"
)

var (
	ErrAssetNotFound         = errors.New("asset not found")
	ErrDuplicateAsset        = errors.New("asset code already exists")
	ErrDuplicateRelationship = errors.New("relationship already exists")
)

// Store owns all SQL against the asset tables. It does no business
// validation; lookups are exact matches against the stored uppercase codes,
// so callers normalize input first.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListAssets(ctx context.Context) ([]models.Asset, error) {
	assets := []models.Asset{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *Store) GetAsset(ctx context.Context, code string) (*models.Asset, error) {
	var asset models.Asset
	err := s.db.WithContext(ctx).First(&asset, "asset_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

func (s *Store) ListAssetOptions(ctx context.Context) ([]models.AssetOption, error) {
	options := []models.AssetOption{}
	err := s.db.WithContext(ctx).
		Model(&models.Asset{}).
		Select("asset_code", "name", "type").
		Order("asset_code ASC").
		Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (s *Store) CreateAsset(ctx context.Context, code, name, assetType string) (*models.Asset, error) {
	asset := models.Asset{
		Code: strings.ToUpper(code),
		Name: name,
		Type: assetType,
	}
	if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAsset
		}
		return nil, err
	}
	return &asset, nil
}

func (s *Store) Children(ctx context.Context, code string) ([]models.Asset, error) {
	children := []models.Asset{}
	err := s.db.WithContext(ctx).
		Joins("JOIN asset_relationships r ON r.child_asset_code = assets.asset_code").
		Where("r.parent_asset_code = ?", code).
		Find(&children).Error
	if err != nil {
		return nil, err
	}
	return children, nil
}

func (s *Store) Parents(ctx context.Context, code string) ([]models.Asset, error) {
	parents := []models.Asset{}
	err := s.db.WithContext(ctx).
		Joins("JOIN asset_relationships r ON r.parent_asset_code = assets.asset_code").
		Where("r.child_asset_code = ?", code).
		Find(&parents).Error
	if err != nil {
		return nil, err
	}
	return parents, nil
}

func (s *Store) RelationshipExists(ctx context.Context, parentCode, childCode string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("parent_asset_code = ? AND child_asset_code = ?", parentCode, childCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) AddRelationship(ctx context.Context, parentCode, childCode string) (*models.Relationship, error) {
	rel := models.Relationship{
		ParentCode: parentCode,
		ChildCode:  childCode,
	}
	if err := s.db.WithContext(ctx).Create(&rel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRelationship
		}
		return nil, err
	}
	return &rel, nil
}

// RemoveRelationship deletes the ordered edge and reports how many rows went
// away; deleting an edge that never existed is not an error.
func (s *Store) RemoveRelationship(ctx context.Context, parentCode, childCode string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("parent_asset_code = ? AND child_asset_code = ?", parentCode, childCode).
		Delete(&models.Relationship{})
	return res.RowsAffected, res.Error
}
