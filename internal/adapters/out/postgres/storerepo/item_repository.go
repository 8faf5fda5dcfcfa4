package storerepo

import (
	"context"
	"errors"
	"sort"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/store"
	"oja/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormItemRepository) Add(ctx context.Context, aggregate *store.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormItemRepository) Update(ctx context.Context, aggregate *store.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*store.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetMany locks the rows with ORDER BY id so every transaction acquires them in the
// same order. Duplicate ids are loaded once.
func (r *GormItemRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*store.Item, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("item ids")
	}

	unique := make(map[uuid.UUID]kernel.UUID, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		unique[id.Bytes()] = id
	}

	keys := make([]uuid.UUID, 0, len(unique))
	for key := range unique {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", keys).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]struct{}, len(dtos))
	items := make([]*store.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		found[dto.ID] = struct{}{}
		items = append(items, item)
	}

	for _, key := range keys {
		if _, ok := found[key]; !ok {
			return nil, errs.NewObjectNotFoundError("item", unique[key].String())
		}
	}

	return items, nil
}
