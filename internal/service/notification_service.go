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

const projectionBatchSize = 100

// NotificationService projects lifecycle events into teacher inboxes. The
// inbox is a best-effort mirror, never a source of truth: projection is
// idempotent and safely re-playable after a crash.
type NotificationService interface {
	// Project consumes unprojected lifecycle events and returns how many it
	// finished.
	Project() (int, error)
	TeacherInbox(userID uint) ([]dto.NotificationDTO, error)
	UpdateStatus(userID uint, applicationNumber int, status string) error
}

type notificationService struct {
	eventRepo   repository.EventRepository
	teacherRepo repository.TeacherRepository
}

func NewNotificationService(eventRepo repository.EventRepository, teacherRepo repository.TeacherRepository) NotificationService {
	return &notificationService{eventRepo: eventRepo, teacherRepo: teacherRepo}
}

func (s *notificationService) Project() (int, error) {
	events, err := s.eventRepo.FindUnprojected(projectionBatchSize)
	if err != nil {
		return 0, fmt.Errorf("loading unprojected events: %w", err)
	}

	projected := 0
	for i := range events {
		event := &events[i]
		if err := s.apply(event); err != nil {
			// Leave the event unprojected; the replay job retries it.
			log.Error().Err(err).Uint("eventID", event.ID).Str("type", event.Type).Msg("Projection failed for event")
			continue
		}
		if err := s.eventRepo.MarkProjected(event.ID); err != nil {
			log.Error().Err(err).Uint("eventID", event.ID).Msg("Could not mark event projected")
			continue
		}
		projected++
	}
	return projected, nil
}

func (s *notificationService) apply(event *model.LifecycleEvent) error {
	switch event.Type {
	case model.EventRequestCreated:
		return s.applyCreated(event)
	case model.EventTeacherAccepted, model.EventTeacherRejected:
		return s.applyDecision(event)
	case model.EventFeedbackSubmitted:
		return s.applyFeedbackSubmitted(event)
	default:
		log.Warn().Str("type", event.Type).Uint("eventID", event.ID).Msg("Unknown lifecycle event type, skipping")
		return nil
	}
}

func (s *notificationService) applyCreated(event *model.LifecycleEvent) error {
	for _, teacherID := range event.Payload.TeacherIDs {
		profile, err := s.teacherRepo.FindByID(teacherID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Partial delivery is acceptable: a missing teacher record
				// must not block the remaining inbox writes.
				log.Warn().Uint("teacherID", teacherID).Int("applicationNumber", event.ApplicationNumber).Msg("Teacher profile not found during fan-out, skipping")
				continue
			}
			return fmt.Errorf("resolving teacher %d: %w", teacherID, err)
		}

		exists, err := s.teacherRepo.HasNotification(profile.ID, event.ApplicationNumber, model.NotificationNewRequest)
		if err != nil {
			return fmt.Errorf("checking inbox of teacher %d: %w", teacherID, err)
		}
		if exists {
			continue
		}
		notification := model.Notification{
			TeacherProfileID:  profile.ID,
			Type:              model.NotificationNewRequest,
			ApplicationNumber: event.ApplicationNumber,
			Details:           event.Payload.Snapshot,
			Status:            model.StatusPending,
		}
		if err := s.teacherRepo.AppendNotification(&notification); err != nil {
			return fmt.Errorf("appending notification for teacher %d: %w", teacherID, err)
		}
	}
	return nil
}

func (s *notificationService) applyDecision(event *model.LifecycleEvent) error {
	rows, err := s.teacherRepo.UpdateNotificationStatus(event.Payload.TeacherID, event.ApplicationNumber, event.Payload.Status)
	if err != nil {
		return fmt.Errorf("updating notification status: %w", err)
	}
	if rows == 0 {
		// Inbox entry may itself have been skipped at fan-out time.
		log.Warn().Uint("teacherID", event.Payload.TeacherID).Int("applicationNumber", event.ApplicationNumber).Msg("No inbox entry to update for decision event")
	}
	return nil
}

func (s *notificationService) applyFeedbackSubmitted(event *model.LifecycleEvent) error {
	profile, err := s.teacherRepo.FindByID(event.Payload.TeacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Uint("teacherID", event.Payload.TeacherID).Msg("Teacher profile not found for feedback notification, skipping")
			return nil
		}
		return fmt.Errorf("resolving teacher %d: %w", event.Payload.TeacherID, err)
	}

	exists, err := s.teacherRepo.HasNotification(profile.ID, event.ApplicationNumber, model.NotificationFeedbackSubmitted)
	if err != nil {
		return fmt.Errorf("checking inbox of teacher %d: %w", event.Payload.TeacherID, err)
	}
	if exists {
		return nil
	}
	notification := model.Notification{
		TeacherProfileID:  profile.ID,
		Type:              model.NotificationFeedbackSubmitted,
		ApplicationNumber: event.ApplicationNumber,
		Details:           event.Payload.Snapshot,
		Status:            model.StatusCompleted,
	}
	if err := s.teacherRepo.AppendNotification(&notification); err != nil {
		return fmt.Errorf("appending feedback notification: %w", err)
	}
	return nil
}

func (s *notificationService) TeacherInbox(userID uint) ([]dto.NotificationDTO, error) {
	profile, err := s.teacherRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: teacher profile for user %d", apperr.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: loading teacher profile: %v", apperr.ErrServer, err)
	}

	notifications, err := s.teacherRepo.Notifications(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading notifications: %v", apperr.ErrServer, err)
	}

	dtos := make([]dto.NotificationDTO, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		dtos = append(dtos, dto.NotificationDTO{
			ID:                n.ID,
			TeacherID:         profile.ID,
			Type:              n.Type,
			ApplicationNumber: n.ApplicationNumber,
			Details: dto.NotificationDetailsDTO{
				StudentName:     n.Details.StudentName,
				Email:           n.Details.Email,
				Topic:           n.Details.Topic,
				Skills:          n.Details.Skills,
				InterviewType:   n.Details.InterviewType,
				ExperienceLevel: n.Details.ExperienceLevel,
				Date:            n.Details.Date,
				StartTime:       n.Details.StartTime,
				InterviewMode:   n.Details.InterviewMode,
				DriveLink:       n.Details.DriveLink,
				ResourcesLink:   n.Details.ResourcesLink,
				FeedbackSummary: n.Details.FeedbackSummary,
			},
			Status:    n.Status,
			CreatedAt: n.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *notificationService) UpdateStatus(userID uint, applicationNumber int, status string) error {
	if model.StatusRank(status) < 0 {
		return fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, status)
	}
	profile, err := s.teacherRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: teacher profile for user %d", apperr.ErrNotFound, userID)
		}
		return fmt.Errorf("%w: loading teacher profile: %v", apperr.ErrServer, err)
	}
	rows, err := s.teacherRepo.UpdateNotificationStatus(profile.ID, applicationNumber, status)
	if err != nil {
		return fmt.Errorf("%w: updating notification status: %v", apperr.ErrServer, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: notification for application %d", apperr.ErrNotFound, applicationNumber)
	}
	return nil
}
