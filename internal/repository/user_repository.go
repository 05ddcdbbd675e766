package repository

import (
	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/internal/model"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	StudentProfileByUserID(userID uint) (*model.StudentProfile, error)
	SaveStudentProfile(profile *model.StudentProfile) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) StudentProfileByUserID(userID uint) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *userRepository) SaveStudentProfile(profile *model.StudentProfile) error {
	return r.db.Save(profile).Error
}
