package postgres

import (
	"context"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	"hub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counterConflictTarget is the primary key of like_counters, used as the
// upsert conflict target.
var counterConflictTarget = []clause.Column{
	{Name: "mfd"},
	{Name: "product_type"},
	{Name: "product_id"},
}

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// FindEvent retrieves the caller's like event for a key.
func (repo *likeRepository) FindEvent(ctx context.Context, accountID int64, key entity.LikeKey) (*entity.LikeEvent, error) {
	var eventM model.LikeEventModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND mfd = ? AND product_type = ? AND product_id = ?",
			accountID, key.MFD, key.ProductType, key.ProductID).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find like event")
	}

	return toLikeEventDomain(&eventM), nil
}

// CreateEvent inserts a like event. The unique (account, key) index turns a
// concurrent duplicate submit into ErrDuplicateLikeEvent.
func (repo *likeRepository) CreateEvent(ctx context.Context, event *entity.LikeEvent) error {
	eventM := fromLikeEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLikeEvent
		}

		return errors.Wrap(err, "failed to create like event")
	}

	event.Timestamp = eventM.CreatedAt

	return nil
}

// DeleteEvent removes a like event. Zero rows affected means a concurrent
// request already removed it.
func (repo *likeRepository) DeleteEvent(ctx context.Context, accountID int64, key entity.LikeKey) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND mfd = ? AND product_type = ? AND product_id = ?",
			accountID, key.MFD, key.ProductType, key.ProductID).
		Delete(&model.LikeEventModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete like event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLikeEventNotFound
	}

	return nil
}

// IncrementCounter upserts the counter row for key: created with total=1 or
// incremented by 1. RETURNING gives back the post-write total without a
// second round trip.
func (repo *likeRepository) IncrementCounter(ctx context.Context, key entity.LikeKey) (int64, error) {
	counterM := model.LikeCounterModel{
		MFD:         key.MFD,
		ProductType: key.ProductType,
		ProductID:   key.ProductID,
		Total:       1,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: counterConflictTarget,
				DoUpdates: clause.Assignments(map[string]any{
					"total":      gorm.Expr("like_counters.total + 1"),
					"updated_at": gorm.Expr("NOW()"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "total"}}},
		).
		Create(&counterM).Error; err != nil {
		return 0, errors.Wrap(err, "failed to increment like counter")
	}

	return counterM.Total, nil
}

// DecrementCounter upserts the counter row for key: created with total=0 when
// no row exists yet, otherwise decremented with a floor of zero.
func (repo *likeRepository) DecrementCounter(ctx context.Context, key entity.LikeKey) (int64, error) {
	counterM := model.LikeCounterModel{
		MFD:         key.MFD,
		ProductType: key.ProductType,
		ProductID:   key.ProductID,
		Total:       0,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: counterConflictTarget,
				DoUpdates: clause.Assignments(map[string]any{
					"total":      gorm.Expr("GREATEST(like_counters.total - 1, 0)"),
					"updated_at": gorm.Expr("NOW()"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "total"}}},
		).
		Create(&counterM).Error; err != nil {
		return 0, errors.Wrap(err, "failed to decrement like counter")
	}

	return counterM.Total, nil
}

// GetTotal returns the aggregate total for key, 0 when no row exists.
func (repo *likeRepository) GetTotal(ctx context.Context, key entity.LikeKey) (int64, error) {
	var counterM model.LikeCounterModel

	if err := repo.db.WithContext(ctx).
		Where("mfd = ? AND product_type = ? AND product_id = ?",
			key.MFD, key.ProductType, key.ProductID).
		First(&counterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to get like total")
	}

	return counterM.Total, nil
}

// GetStatuses returns counter totals joined with the caller's own like events
// for a batch of items sharing one dimension and category. Items without a
// counter row report total=0, not an error.
func (repo *likeRepository) GetStatuses(ctx context.Context, accountID int64, mfd string, productType int, productIDs []string) ([]*entity.LikeStatus, error) {
	if len(productIDs) == 0 {
		return []*entity.LikeStatus{}, nil
	}

	var counterModels []*model.LikeCounterModel
	if err := repo.db.WithContext(ctx).
		Where("mfd = ? AND product_type = ? AND product_id IN ?", mfd, productType, productIDs).
		Find(&counterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load like counters")
	}

	var eventModels []*model.LikeEventModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND mfd = ? AND product_type = ? AND product_id IN ?",
			accountID, mfd, productType, productIDs).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load like events")
	}

	totals := make(map[string]int64, len(counterModels))
	for _, counterM := range counterModels {
		totals[counterM.ProductID] = counterM.Total
	}
	likedAt := make(map[string]*model.LikeEventModel, len(eventModels))
	for _, eventM := range eventModels {
		likedAt[eventM.ProductID] = eventM
	}

	statuses := make([]*entity.LikeStatus, 0, len(productIDs))
	for _, productID := range productIDs {
		status := &entity.LikeStatus{
			Key: entity.LikeKey{
				MFD:         mfd,
				ProductType: productType,
				ProductID:   productID,
			},
			Total: totals[productID],
		}
		if eventM, ok := likedAt[productID]; ok {
			status.Liked = true
			createdAt := eventM.CreatedAt
			status.LikedAt = &createdAt
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// --- Mapper Functions ---

// toLikeEventDomain converts a GORM LikeEventModel to a domain LikeEvent entity.
func toLikeEventDomain(data *model.LikeEventModel) *entity.LikeEvent {
	if data == nil {
		return nil
	}

	return &entity.LikeEvent{
		AccountID: data.AccountID,
		Key: entity.LikeKey{
			MFD:         data.MFD,
			ProductType: data.ProductType,
			ProductID:   data.ProductID,
		},
		Timestamp: data.CreatedAt,
	}
}

// fromLikeEventDomain converts a domain LikeEvent entity to a GORM LikeEventModel.
func fromLikeEventDomain(data *entity.LikeEvent) *model.LikeEventModel {
	if data == nil {
		return nil
	}

	return &model.LikeEventModel{
		AccountID:   data.AccountID,
		MFD:         data.Key.MFD,
		ProductType: data.Key.ProductType,
		ProductID:   data.Key.ProductID,
		CreatedAt:   data.Timestamp,
	}
}
