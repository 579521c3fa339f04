package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"tripcheck/internal/models/db_models"
)

type TripRepositoryInterface interface {
	CreateTrip(trip db_models.TripRecord, ctx context.Context) error
	GetTripByID(tripID string, ctx context.Context) (*db_models.TripRecord, error)
	GetTripsByUser(userID string, page int, pageSize int, ctx context.Context) ([]db_models.TripRecord, error)
	DeleteTrip(tripID string, userID string, ctx context.Context) error
}

func NewTripRepository(db *gorm.DB) TripRepositoryInterface {
	return &TripRepository{db: db}
}

type TripRepository struct {
	db *gorm.DB
}

func (t TripRepository) CreateTrip(trip db_models.TripRecord, ctx context.Context) error {

	return t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(&trip).Error; err != nil {
			return err
		}

		return nil
	})

}

func (t TripRepository) GetTripByID(tripID string, ctx context.Context) (*db_models.TripRecord, error) {

	var trip db_models.TripRecord
	err := t.db.WithContext(ctx).Where("id = ?", tripID).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}
	return &trip, nil
}

func (t TripRepository) GetTripsByUser(userID string, page int, pageSize int, ctx context.Context) ([]db_models.TripRecord, error) {

	var trips []db_models.TripRecord
	err := t.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (t TripRepository) DeleteTrip(tripID string, userID string, ctx context.Context) error {

	return t.db.Transaction(func(tx *gorm.DB) error {
		res := tx.WithContext(ctx).
			Where("id = ? AND user_id = ?", tripID, userID).
			Delete(&db_models.TripRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
