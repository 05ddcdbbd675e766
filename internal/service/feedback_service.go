package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/internal/apperr"
	"github.com/vamshigadde09/GWG/internal/dto"
	"github.com/vamshigadde09/GWG/internal/model"
	"github.com/vamshigadde09/GWG/internal/repository"
)

// FeedbackService records structured evaluation for a completed request and
// gates it on confirmed attendance.
type FeedbackService interface {
	Submit(applicationNumber int, payload dto.FeedbackPayloadDTO) (uint, error)
	ListForStudent(studentID uint) ([]dto.StudentFeedbackDTO, error)
}

type feedbackService struct {
	requestRepo  repository.InterviewRequestRepository
	feedbackRepo repository.FeedbackRepository
	notifier     NotificationService
}

func NewFeedbackService(
	requestRepo repository.InterviewRequestRepository,
	feedbackRepo repository.FeedbackRepository,
	notifier NotificationService,
) FeedbackService {
	return &feedbackService{
		requestRepo:  requestRepo,
		feedbackRepo: feedbackRepo,
		notifier:     notifier,
	}
}

func (s *feedbackService) Submit(applicationNumber int, payload dto.FeedbackPayloadDTO) (uint, error) {
	if err := validateFeedbackPayload(payload); err != nil {
		return 0, err
	}

	for attempt := 0; attempt < maxDecisionRetries; attempt++ {
		request, err := s.requestRepo.FindByApplicationNumber(applicationNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("%w: interview request %d", apperr.ErrNotFound, applicationNumber)
			}
			return 0, fmt.Errorf("%w: loading interview request: %v", apperr.ErrServer, err)
		}

		// Preconditions checked before any mutation.
		if request.Attendance != model.AttendancePresent {
			return 0, apperr.ErrAttendanceNotConfirmed
		}
		if request.IsFeedbackSubmitted {
			return 0, fmt.Errorf("%w: feedback already submitted for request %d", apperr.ErrConflict, applicationNumber)
		}

		feedback := model.Feedback{
			InterviewRequestID:        request.ID,
			StudentID:                 payload.StudentID,
			TeacherID:                 payload.TeacherID,
			CommunicationSkills:       payload.CommunicationSkills,
			TechnicalKnowledge:        payload.TechnicalKnowledge,
			ProblemSolvingAbility:     payload.ProblemSolvingAbility,
			ConfidenceAndBodyLanguage: payload.ConfidenceAndBodyLanguage,
			TimeManagement:            payload.TimeManagement,
			OverallPerformance:        payload.OverallPerformance,
			Strengths:                 payload.Strengths,
			AreasForImprovement:       payload.AreasForImprovement,
			Detailed: model.DetailedFeedback{
				OpeningStatement:          payload.DetailedFeedback.OpeningStatement,
				TechnicalAnalysis:         payload.DetailedFeedback.TechnicalAnalysis,
				ProblemSolvingDiscussion:  payload.DetailedFeedback.ProblemSolvingDiscussion,
				CommunicationObservations: payload.DetailedFeedback.CommunicationObservations,
				BehavioralAssessment:      payload.DetailedFeedback.BehavioralAssessment,
				ClosingRemarks:            payload.DetailedFeedback.ClosingRemarks,
			},
			ActionableSuggestions: payload.ActionableSuggestions,
			AdditionalComments:    payload.AdditionalComments,
			Recommendation:        payload.Recommendation,
		}

		var acceptedAssignmentIDs []uint
		for i := range request.Teachers {
			if request.Teachers[i].Status == model.StatusAccepted {
				acceptedAssignmentIDs = append(acceptedAssignmentIDs, request.Teachers[i].ID)
			}
		}

		event := &model.LifecycleEvent{
			ApplicationNumber: applicationNumber,
			Type:              model.EventFeedbackSubmitted,
			Payload: model.EventPayload{
				TeacherID: payload.TeacherID,
				Status:    model.StatusCompleted,
				Snapshot: model.NotificationDetails{
					StudentName:     request.StudentName,
					Email:           request.Email,
					FeedbackSummary: "Overall Performance: " + payload.OverallPerformance,
				},
			},
		}

		ok, err := s.feedbackRepo.SubmitWithCompletion(&feedback, request.ID, request.Version, acceptedAssignmentIDs, event)
		if err != nil {
			return 0, fmt.Errorf("%w: saving feedback: %v", apperr.ErrServer, err)
		}
		if !ok {
			log.Warn().Int("applicationNumber", applicationNumber).Int("attempt", attempt+1).Msg("Feedback submission lost a version race, retrying")
			continue
		}

		log.Info().Int("applicationNumber", applicationNumber).Uint("feedbackID", feedback.ID).Msg("Feedback submitted, request completed")
		if s.notifier != nil {
			if _, err := s.notifier.Project(); err != nil {
				log.Warn().Err(err).Msg("Inline notification projection failed, replay job will retry")
			}
		}
		return feedback.ID, nil
	}
	return 0, fmt.Errorf("%w: concurrent updates on request %d, please retry", apperr.ErrConflict, applicationNumber)
}

func (s *feedbackService) ListForStudent(studentID uint) ([]dto.StudentFeedbackDTO, error) {
	rows, err := s.feedbackRepo.FindByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching feedback: %v", apperr.ErrServer, err)
	}

	dtos := make([]dto.StudentFeedbackDTO, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		var out dto.StudentFeedbackDTO
		if err := copier.Copy(&out, &row.Feedback); err != nil {
			log.Error().Err(err).Uint("feedbackID", row.Feedback.ID).Msg("Error copying feedback to DTO")
			continue
		}
		out.ApplicationNumber = row.ApplicationNumber
		out.Topic = row.Topic
		out.Date = row.Date
		out.ActionableSuggestions = []string(row.Feedback.ActionableSuggestions)
		out.DetailedFeedback = dto.DetailedFeedbackDTO{
			OpeningStatement:          row.Feedback.Detailed.OpeningStatement,
			TechnicalAnalysis:         row.Feedback.Detailed.TechnicalAnalysis,
			ProblemSolvingDiscussion:  row.Feedback.Detailed.ProblemSolvingDiscussion,
			CommunicationObservations: row.Feedback.Detailed.CommunicationObservations,
			BehavioralAssessment:      row.Feedback.Detailed.BehavioralAssessment,
			ClosingRemarks:            row.Feedback.Detailed.ClosingRemarks,
		}
		dtos = append(dtos, out)
	}
	return dtos, nil
}

func validateFeedbackPayload(payload dto.FeedbackPayloadDTO) error {
	var missing []string
	if payload.InterviewRequestID == 0 {
		missing = append(missing, "interviewRequestId")
	}
	if payload.StudentID == 0 {
		missing = append(missing, "studentId")
	}
	if payload.TeacherID == 0 {
		missing = append(missing, "teacherId")
	}
	for field, value := range map[string]string{
		"communicationSkills":       payload.CommunicationSkills,
		"technicalKnowledge":        payload.TechnicalKnowledge,
		"problemSolvingAbility":     payload.ProblemSolvingAbility,
		"confidenceAndBodyLanguage": payload.ConfidenceAndBodyLanguage,
		"timeManagement":            payload.TimeManagement,
		"overallPerformance":        payload.OverallPerformance,
		"strengths":                 payload.Strengths,
		"areasForImprovement":       payload.AreasForImprovement,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", apperr.ErrMissingFields, missing)
	}
	return nil
}
