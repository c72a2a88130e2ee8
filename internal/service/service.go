package service

import (
	"context"
	"errors"
	"strings"

	"assettracker/internal/models"
	"assettracker/internal/store"
)

// Service implements the request-level contracts on top of the store:
// field validation, code normalization and the existence/duplicate checks
// the store alone does not enforce.
type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) ListAssets(ctx context.Context) ([]models.Asset, error) {
	return s.store.ListAssets(ctx)
}

func (s *Service) ListAssetOptions(ctx context.Context) ([]models.AssetOption, error) {
	return s.store.ListAssetOptions(ctx)
}

func (s *Service) CreateAsset(ctx context.Context, code, name, assetType string) (*models.Asset, error) {
	if strings.TrimSpace(code) == "" || strings.TrimSpace(name) == "" || strings.TrimSpace(assetType) == "" {
		return nil, &ValidationError{Reason: "missing required fields"}
	}
	return s.store.CreateAsset(ctx, strings.ToUpper(code), name, assetType)
}

// GetAssetDetail fetches the asset plus its children and parents. The three
// reads are independent; there is no snapshot guarantee between them. The
// code is matched as given, without normalization.
func (s *Service) GetAssetDetail(ctx context.Context, code string) (*models.AssetDetail, error) {
	asset, err := s.store.GetAsset(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			return nil, &NotFoundError{Role: "asset", Code: code}
		}
		return nil, err
	}

	children, err := s.store.Children(ctx, asset.Code)
	if err != nil {
		return nil, err
	}
	parents, err := s.store.Parents(ctx, asset.Code)
	if err != nil {
		return nil, err
	}

	return &models.AssetDetail{
		Asset:    *asset,
		Children: children,
		Parents:  parents,
	}, nil
}

// AddParentRelationship checks both endpoints exist, rejects self and
// duplicate edges, then persists. The checks are not transactional with the
// insert; a concurrent writer can still trip the unique index, which the
// store surfaces as the same duplicate error as the pre-check.
func (s *Service) AddParentRelationship(ctx context.Context, childCode, parentCode string) (*models.Relationship, error) {
	child := strings.ToUpper(childCode)
	parent := strings.ToUpper(parentCode)

	if _, err := s.store.GetAsset(ctx, child); err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			return nil, &NotFoundError{Role: "child", Code: childCode}
		}
		return nil, err
	}
	if _, err := s.store.GetAsset(ctx, parent); err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			return nil, &NotFoundError{Role: "parent", Code: parentCode}
		}
		return nil, err
	}
	if child == parent {
		return nil, &ValidationError{Reason: "an asset cannot be a parent of itself"}
	}

	exists, err := s.store.RelationshipExists(ctx, parent, child)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, store.ErrDuplicateRelationship
	}

	return s.store.AddRelationship(ctx, parent, child)
}

// RemoveParentRelationship deletes the edge unconditionally; removing an
// edge that does not exist is a no-op, not an error.
func (s *Service) RemoveParentRelationship(ctx context.Context, childCode, parentCode string) error {
	_, err := s.store.RemoveRelationship(ctx, strings.ToUpper(parentCode), strings.ToUpper(childCode))
	return err
}
