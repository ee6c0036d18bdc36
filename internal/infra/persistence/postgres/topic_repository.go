package postgres

import (
	"context"
	"time"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	"hub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// topicRepository implements the repository.TopicRepository interface.
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository is the constructor for topicRepository.
func NewTopicRepository(db *gorm.DB) repository.TopicRepository {
	return &topicRepository{
		db: db,
	}
}

// ListSelectable returns the user-selectable topics ordered by id.
func (repo *topicRepository) ListSelectable(ctx context.Context) ([]*entity.Topic, error) {
	var topicModels []*model.TopicModel

	if err := repo.db.WithContext(ctx).
		Where("user_select = ?", true).
		Order("id ASC").
		Find(&topicModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list selectable topics")
	}

	topics := make([]*entity.Topic, 0, len(topicModels))
	for _, topicM := range topicModels {
		topics = append(topics, toTopicDomain(topicM))
	}

	return topics, nil
}

// FindByID retrieves one topic by id.
func (repo *topicRepository) FindByID(ctx context.Context, id int64) (*entity.Topic, error) {
	var topicM model.TopicModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&topicM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTopicNotFound
		}

		return nil, errors.Wrap(err, "failed to find topic by ID")
	}

	return toTopicDomain(&topicM), nil
}

// ReplaceSubscriptions makes topicIDs the complete subscription set for the
// account: rows outside the set are deleted, missing rows are inserted with
// a conflict-ignoring insert so existing rows keep their timestamp.
func (repo *topicRepository) ReplaceSubscriptions(ctx context.Context, accountID int64, topicIDs []int64) error {
	prune := repo.db.WithContext(ctx).Where("account_id = ?", accountID)
	if len(topicIDs) > 0 {
		prune = prune.Where("topic_id NOT IN ?", topicIDs)
	}
	if err := prune.Delete(&model.TopicSubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to prune subscriptions")
	}

	if len(topicIDs) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]model.TopicSubscriptionModel, 0, len(topicIDs))
	for _, topicID := range topicIDs {
		rows = append(rows, model.TopicSubscriptionModel{
			AccountID:    accountID,
			TopicID:      topicID,
			SubscribedAt: now,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTopicNotFound
		}

		return errors.Wrap(err, "failed to insert subscriptions")
	}

	return nil
}

// ListSubscriptions returns the account's subscriptions with topic data.
func (repo *topicRepository) ListSubscriptions(ctx context.Context, accountID int64) ([]*entity.TopicSubscription, error) {
	var subModels []*model.TopicSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Topic").
		Where("account_id = ?", accountID).
		Order("topic_id ASC").
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	subs := make([]*entity.TopicSubscription, 0, len(subModels))
	for _, subM := range subModels {
		subs = append(subs, &entity.TopicSubscription{
			AccountID:    subM.AccountID,
			TopicID:      subM.TopicID,
			SubscribedAt: subM.SubscribedAt,
			Topic:        toTopicDomain(subM.Topic),
		})
	}

	return subs, nil
}

// --- Mapper Functions ---

// toTopicDomain converts a GORM TopicModel to a domain Topic entity.
func toTopicDomain(data *model.TopicModel) *entity.Topic {
	if data == nil {
		return nil
	}

	return &entity.Topic{
		ID:          data.ID,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		UserSelect:  data.UserSelect,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
