package repository

import (
	"context"
	"errors"

	"calltrack/internal/model"

	"gorm.io/gorm"
)

type TagStore interface {
	Create(ctx context.Context, tag *model.Tag) error
	GetAll(ctx context.Context) ([]model.Tag, error)
	GetByID(ctx context.Context, id uint) (*model.Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]model.Tag, error)
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, id uint) error
}

type TagRepository struct {
	db *gorm.DB
}

var _ TagStore = (*TagRepository)(nil)

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *TagRepository) GetAll(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepository) GetByID(ctx context.Context, id uint) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs returns the tags whose ids exist; unknown ids are silently
// dropped and duplicates collapse to a single row.
func (r *TagRepository) GetByIDs(ctx context.Context, ids []uint) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepository) Update(ctx context.Context, tag *model.Tag) error {
	result := r.db.WithContext(ctx).Save(tag)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}
	return nil
}

// Delete detaches the tag from every call before removing the row, so
// calls that referenced it survive untouched.
func (r *TagRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM call_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Tag{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTagNotFound
		}
		return nil
	})
}
