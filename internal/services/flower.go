package services

import (
	"context"
	"errors"
	"strings"

	"github.com/zengarden/apiserver/types"
)

// ErrNameRequired is returned when a flower is submitted without a name.
var ErrNameRequired = errors.New("flower name is required")

// ErrForbidden is returned when a caller acts on a flower owned by
// someone else.
var ErrForbidden = errors.New("not the owner of this flower")

// FlowerRepository defines persistence operations for flowers.
type FlowerRepository interface {
	Get(ctx context.Context, id int) (types.Flower, error)
	ListByOwner(ctx context.Context, ownerID int) ([]types.Flower, error)
	Create(ctx context.Context, flower types.Flower) (types.Flower, error)
	Update(ctx context.Context, flower types.Flower) (types.Flower, error)
	Delete(ctx context.Context, id int) error
}

// FlowerService encapsulates flower use-cases: input validation,
// ownership enforcement, and store orchestration.
type FlowerService struct {
	repo FlowerRepository
}

func NewFlowerService(repo FlowerRepository) *FlowerService {
	return &FlowerService{repo: repo}
}

// Create persists a new flower owned by the caller.
func (s *FlowerService) Create(ctx context.Context, flower types.Flower, callerID int) (types.Flower, error) {
	if strings.TrimSpace(flower.Name) == "" {
		return types.Flower{}, ErrNameRequired
	}
	flower.OwnerID = callerID
	return s.repo.Create(ctx, flower)
}

// Update overwrites every mutable field of an existing flower. Fields
// absent from the input are written as absent, not left unchanged.
// Existence is checked before ownership, so a non-owner learns the record
// exists but nothing else.
func (s *FlowerService) Update(ctx context.Context, flower types.Flower, callerID int) (types.Flower, error) {
	if strings.TrimSpace(flower.Name) == "" {
		return types.Flower{}, ErrNameRequired
	}

	existing, err := s.repo.Get(ctx, flower.ID)
	if err != nil {
		return types.Flower{}, err
	}
	if err := ensureOwner(existing, callerID); err != nil {
		return types.Flower{}, err
	}

	flower.OwnerID = existing.OwnerID
	return s.repo.Update(ctx, flower)
}

// Delete removes a flower after the same existence-then-ownership check
// as Update.
func (s *FlowerService) Delete(ctx context.Context, id, callerID int) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := ensureOwner(existing, callerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListByOwner returns all flowers owned by the caller.
func (s *FlowerService) ListByOwner(ctx context.Context, callerID int) ([]types.Flower, error) {
	return s.repo.ListByOwner(ctx, callerID)
}

func ensureOwner(flower types.Flower, callerID int) error {
	if flower.OwnerID != callerID {
		return ErrForbidden
	}
	return nil
}
