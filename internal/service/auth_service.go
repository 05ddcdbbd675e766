package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/config"
	"github.com/vamshigadde09/GWG/internal/apperr"
	"github.com/vamshigadde09/GWG/internal/auth"
	"github.com/vamshigadde09/GWG/internal/dto"
	"github.com/vamshigadde09/GWG/internal/model"
	"github.com/vamshigadde09/GWG/internal/repository"
)

type AuthService interface {
	Register(req dto.RegisterDTO) error
	Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Me(userID uint) (*dto.MeDTO, error)
}

type authService struct {
	userRepo    repository.UserRepository
	teacherRepo repository.TeacherRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, teacherRepo repository.TeacherRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, teacherRepo: teacherRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterDTO) error {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return fmt.Errorf("%w: user already exists", apperr.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: checking existing user: %v", apperr.ErrServer, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: hashing password: %v", apperr.ErrServer, err)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return fmt.Errorf("%w: creating user: %v", apperr.ErrServer, err)
	}

	// Seed the profile so addressed teachers are resolvable right away.
	switch req.Role {
	case model.RoleTeacher:
		profile := model.TeacherProfile{UserID: user.ID, Name: user.Name}
		if err := s.teacherRepo.Save(&profile); err != nil {
			log.Warn().Err(err).Uint("userID", user.ID).Msg("Could not seed teacher profile")
		}
	case model.RoleStudent:
		profile := model.StudentProfile{UserID: user.ID, Name: user.Name}
		if err := s.userRepo.SaveStudentProfile(&profile); err != nil {
			log.Warn().Err(err).Uint("userID", user.ID).Msg("Could not seed student profile")
		}
	}

	log.Info().Uint("userID", user.ID).Str("role", user.Role).Msg("User registered")
	return nil
}

func (s *authService) Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: loading user: %v", apperr.ErrServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.JWT.ExpiryHours) * time.Hour
	token, err := auth.GenerateToken(s.cfg.JWT.Secret, user.ID, user.Role, ttl)
	if err != nil {
		return nil, fmt.Errorf("%w: signing token: %v", apperr.ErrServer, err)
	}

	return &dto.LoginResponseDTO{Token: token, Role: user.Role}, nil
}

func (s *authService) Me(userID uint) (*dto.MeDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: loading user: %v", apperr.ErrServer, err)
	}

	me := dto.MeDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}

	if teacherProfile, err := s.teacherRepo.FindByUserID(userID); err == nil {
		me.TeacherProfile = toTeacherProfileDTO(teacherProfile)
	}
	if studentProfile, err := s.userRepo.StudentProfileByUserID(userID); err == nil {
		me.StudentProfile = &dto.StudentProfileDTO{
			ID:             studentProfile.ID,
			UserID:         studentProfile.UserID,
			Name:           studentProfile.Name,
			Phone:          studentProfile.Phone,
			Department:     studentProfile.Department,
			Batch:          studentProfile.Batch,
			Program:        studentProfile.Program,
			Specialization: studentProfile.Specialization,
			Branch:         studentProfile.Branch,
			LinkedIn:       studentProfile.LinkedIn,
			CareerGoals:    studentProfile.CareerGoals,
		}
	}

	return &me, nil
}
