package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/internal/apperr"
	"github.com/vamshigadde09/GWG/internal/dto"
	"github.com/vamshigadde09/GWG/internal/model"
	"github.com/vamshigadde09/GWG/internal/repository"
)

type TeacherService interface {
	UpdateProfile(userID uint, req dto.TeacherProfileUpdateDTO) (*dto.TeacherProfileDTO, error)
	Availability(userID uint) (*dto.AvailabilityDTO, error)
	UpdateAvailability(userID uint, req dto.AvailabilityDTO) error
	Search(name, skill string) ([]dto.TeacherSummaryDTO, error)
	Details(id uint) (*dto.TeacherProfileDTO, error)
}

type teacherService struct {
	teacherRepo repository.TeacherRepository
}

func NewTeacherService(teacherRepo repository.TeacherRepository) TeacherService {
	return &teacherService{teacherRepo: teacherRepo}
}

func (s *teacherService) UpdateProfile(userID uint, req dto.TeacherProfileUpdateDTO) (*dto.TeacherProfileDTO, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}

	profile, err := s.teacherRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: loading teacher profile: %v", apperr.ErrServer, err)
		}
		profile = &model.TeacherProfile{UserID: userID}
		log.Info().Uint("userID", userID).Msg("Teacher profile not found, creating a new one")
	}

	profile.Name = req.Name
	profile.Designation = req.Designation
	profile.Department = req.Department
	profile.ContactDetails = req.ContactDetails
	profile.ProfilePicture = req.ProfilePicture
	profile.Skills = req.Skills
	profile.AreasOfExpertise = req.AreasOfExpertise
	profile.Availability = req.Availability
	profile.AvailabilityNotes = req.AvailabilityNotes
	profile.PreferredNotificationMethod = req.PreferredNotificationMethod
	profile.Publications = req.Publications
	profile.LinkedIn = req.LinkedIn
	profile.OtherProfessionalLinks = req.OtherProfessionalLinks
	profile.IsProfileUpdated = true

	if err := s.teacherRepo.Save(profile); err != nil {
		return nil, fmt.Errorf("%w: saving teacher profile: %v", apperr.ErrServer, err)
	}
	return toTeacherProfileDTO(profile), nil
}

func (s *teacherService) Availability(userID uint) (*dto.AvailabilityDTO, error) {
	profile, err := s.findByUserID(userID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailabilityDTO{
		Availability:      []string(profile.Availability),
		AvailabilityNotes: profile.AvailabilityNotes,
	}, nil
}

func (s *teacherService) UpdateAvailability(userID uint, req dto.AvailabilityDTO) error {
	if len(req.Availability) == 0 {
		return fmt.Errorf("%w: availability cannot be empty", apperr.ErrValidation)
	}
	profile, err := s.findByUserID(userID)
	if err != nil {
		return err
	}
	profile.Availability = req.Availability
	profile.AvailabilityNotes = req.AvailabilityNotes
	if err := s.teacherRepo.Save(profile); err != nil {
		return fmt.Errorf("%w: saving availability: %v", apperr.ErrServer, err)
	}
	return nil
}

func (s *teacherService) Search(name, skill string) ([]dto.TeacherSummaryDTO, error) {
	profiles, err := s.teacherRepo.Search(name, skill)
	if err != nil {
		return nil, fmt.Errorf("%w: searching teachers: %v", apperr.ErrServer, err)
	}
	summaries := make([]dto.TeacherSummaryDTO, 0, len(profiles))
	for i := range profiles {
		summaries = append(summaries, dto.TeacherSummaryDTO{
			ID:          profiles[i].ID,
			Name:        profiles[i].Name,
			Designation: profiles[i].Designation,
			Skills:      []string(profiles[i].Skills),
		})
	}
	return summaries, nil
}

func (s *teacherService) Details(id uint) (*dto.TeacherProfileDTO, error) {
	profile, err := s.teacherRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: teacher %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: loading teacher: %v", apperr.ErrServer, err)
	}
	return toTeacherProfileDTO(profile), nil
}

func (s *teacherService) findByUserID(userID uint) (*model.TeacherProfile, error) {
	profile, err := s.teacherRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: teacher profile for user %d", apperr.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: loading teacher profile: %v", apperr.ErrServer, err)
	}
	return profile, nil
}

func toTeacherProfileDTO(profile *model.TeacherProfile) *dto.TeacherProfileDTO {
	return &dto.TeacherProfileDTO{
		ID:                          profile.ID,
		UserID:                      profile.UserID,
		Name:                        profile.Name,
		Designation:                 profile.Designation,
		Department:                  profile.Department,
		ContactDetails:              profile.ContactDetails,
		ProfilePicture:              profile.ProfilePicture,
		Skills:                      []string(profile.Skills),
		AreasOfExpertise:            []string(profile.AreasOfExpertise),
		Availability:                []string(profile.Availability),
		AvailabilityNotes:           profile.AvailabilityNotes,
		PreferredNotificationMethod: profile.PreferredNotificationMethod,
		Publications:                profile.Publications,
		LinkedIn:                    profile.LinkedIn,
		OtherProfessionalLinks:      []string(profile.OtherProfessionalLinks),
	}
}
