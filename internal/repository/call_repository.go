package repository

import (
	"context"
	"errors"

	"calltrack/internal/model"

	"gorm.io/gorm"
)

type CallStore interface {
	CreateWithTags(ctx context.Context, call *model.Call, tagIDs []uint) error
	GetAll(ctx context.Context) ([]model.Call, error)
	GetByID(ctx context.Context, id uint) (*model.Call, error)
	UpdateWithTags(ctx context.Context, call *model.Call, tagIDs *[]uint) error
	AttachTags(ctx context.Context, callID uint, tagIDs []uint) error
	DetachTags(ctx context.Context, callID uint, tagIDs []uint) error
	Delete(ctx context.Context, id uint) error
}

type CallRepository struct {
	db *gorm.DB
}

var _ CallStore = (*CallRepository)(nil)

func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

// CreateWithTags persists the call and its tag associations in one
// transaction; a failed attach leaves no orphan call row behind.
func (r *CallRepository) CreateWithTags(ctx context.Context, call *model.Call, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(call).Error; err != nil {
			return err
		}
		return attachTagsTx(tx, call.ID, tagIDs)
	})
}

// GetAll returns every call with tags and tasks eagerly loaded.
func (r *CallRepository) GetAll(ctx context.Context) ([]model.Call, error) {
	var calls []model.Call
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Tasks").
		Find(&calls).Error
	if err != nil {
		return nil, err
	}
	return calls, nil
}

func (r *CallRepository) GetByID(ctx context.Context, id uint) (*model.Call, error) {
	var call model.Call
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Tasks").
		First(&call, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCallNotFound
	}
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// UpdateWithTags persists the call's own columns and, when tagIDs is
// non-nil, swaps the tag set for the given one in the same transaction.
// A nil tagIDs leaves associations untouched; an empty set clears them.
func (r *CallRepository) UpdateWithTags(ctx context.Context, call *model.Call, tagIDs *[]uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Tags", "Tasks").Save(call)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCallNotFound
		}
		if tagIDs == nil {
			return nil
		}
		if err := tx.Exec("DELETE FROM call_tags WHERE call_id = ?", call.ID).Error; err != nil {
			return err
		}
		return attachTagsTx(tx, call.ID, *tagIDs)
	})
}

// AttachTags adds join rows for the given tags. Attaching an
// already-present tag is a no-op.
func (r *CallRepository) AttachTags(ctx context.Context, callID uint, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return attachTagsTx(tx, callID, tagIDs)
	})
}

// DetachTags removes join rows for the given tags. Detaching an absent
// tag is a no-op.
func (r *CallRepository) DetachTags(ctx context.Context, callID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM call_tags WHERE call_id = ? AND tag_id IN ?",
		callID, tagIDs,
	).Error
}

func attachTagsTx(tx *gorm.DB, callID uint, tagIDs []uint) error {
	for _, tagID := range tagIDs {
		err := tx.Exec(
			"INSERT INTO call_tags (call_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			callID, tagID,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the call, its tag associations and its tasks in one
// transaction. The tag rows themselves are left alone.
func (r *CallRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM call_tags WHERE call_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tasks WHERE call_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Call{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCallNotFound
		}
		return nil
	})
}
