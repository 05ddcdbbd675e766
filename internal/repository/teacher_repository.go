package repository

import (
	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/internal/model"
)

type TeacherRepository interface {
	FindByID(id uint) (*model.TeacherProfile, error)
	FindByUserID(userID uint) (*model.TeacherProfile, error)
	FindByIDs(ids []uint) ([]model.TeacherProfile, error)
	Search(name, skill string) ([]model.TeacherProfile, error)
	Save(profile *model.TeacherProfile) error

	Notifications(teacherProfileID uint) ([]model.Notification, error)
	HasNotification(teacherProfileID uint, applicationNumber int, notificationType string) (bool, error)
	AppendNotification(n *model.Notification) error
	// UpdateNotificationStatus touches the inbox mirror only; it never writes
	// back to the request ledger.
	UpdateNotificationStatus(teacherProfileID uint, applicationNumber int, status string) (int64, error)
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) FindByID(id uint) (*model.TeacherProfile, error) {
	var profile model.TeacherProfile
	err := r.db.First(&profile, id).Error
	return &profile, err
}

func (r *teacherRepository) FindByUserID(userID uint) (*model.TeacherProfile, error) {
	var profile model.TeacherProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *teacherRepository) FindByIDs(ids []uint) ([]model.TeacherProfile, error) {
	var profiles []model.TeacherProfile
	if len(ids) == 0 {
		return profiles, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

func (r *teacherRepository) Search(name, skill string) ([]model.TeacherProfile, error) {
	var profiles []model.TeacherProfile
	query := r.db.Model(&model.TeacherProfile{})
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	if skill != "" {
		query = query.Where("array_to_string(skills, ',') ILIKE ?", "%"+skill+"%")
	}
	err := query.Order("name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *teacherRepository) Save(profile *model.TeacherProfile) error {
	return r.db.Save(profile).Error
}

func (r *teacherRepository) Notifications(teacherProfileID uint) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Where("teacher_profile_id = ?", teacherProfileID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *teacherRepository) HasNotification(teacherProfileID uint, applicationNumber int, notificationType string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("teacher_profile_id = ? AND application_number = ? AND type = ?", teacherProfileID, applicationNumber, notificationType).
		Count(&count).Error
	return count > 0, err
}

func (r *teacherRepository) AppendNotification(n *model.Notification) error {
	return r.db.Create(n).Error
}

func (r *teacherRepository) UpdateNotificationStatus(teacherProfileID uint, applicationNumber int, status string) (int64, error) {
	res := r.db.Model(&model.Notification{}).
		Where("teacher_profile_id = ? AND application_number = ?", teacherProfileID, applicationNumber).
		Update("status", status)
	return res.RowsAffected, res.Error
}
