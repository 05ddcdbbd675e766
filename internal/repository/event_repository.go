package repository

import (
	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/internal/model"
)

type EventRepository interface {
	Append(event *model.LifecycleEvent) error
	FindUnprojected(limit int) ([]model.LifecycleEvent, error)
	MarkProjected(id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Append(event *model.LifecycleEvent) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) FindUnprojected(limit int) ([]model.LifecycleEvent, error) {
	var events []model.LifecycleEvent
	err := r.db.Where("projected = ?", false).
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *eventRepository) MarkProjected(id uint) error {
	return r.db.Model(&model.LifecycleEvent{}).
		Where("id = ?", id).
		Update("projected", true).Error
}
