package usecase

import (
	"context"

	"hub/internal/domain/entity"
)

// ToggleLikeInput identifies the item being toggled. When State is set the
// call is an explicit set instead of a toggle: "like" is a no-op if the
// caller already likes the item, "unlike" is a no-op if they don't.
type ToggleLikeInput struct {
	MFD         string  `json:"mfd" validate:"max=32"`
	ProductType int     `json:"product_type" validate:"min=0"`
	ProductID   string  `json:"product_id" validate:"required,max=64"`
	State       *string `json:"type" validate:"omitempty,oneof=like unlike"`
}

// Key builds the canonical counter key for the input.
func (in *ToggleLikeInput) Key() entity.LikeKey {
	return entity.LikeKey{
		MFD:         in.MFD,
		ProductType: in.ProductType,
		ProductID:   in.ProductID,
	}
}

// LikeUsecase defines the interface for like counter operations.
type LikeUsecase interface {
	// Toggle flips (or explicitly sets) the caller's like state for an item
	// and returns the action taken with the post-write total.
	Toggle(ctx context.Context, accountID int64, input *ToggleLikeInput) (*entity.LikeResult, error)

	// Status returns the caller's like state and the aggregate total for one item.
	Status(ctx context.Context, accountID int64, key entity.LikeKey) (*entity.LikeStatus, error)

	// BatchStatus returns like state for a batch of items sharing one
	// dimension and category, in the order productIDs were given.
	BatchStatus(ctx context.Context, accountID int64, mfd string, productType int, productIDs []string) ([]*entity.LikeStatus, error)
}
