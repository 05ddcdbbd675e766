package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/config"
	"github.com/vamshigadde09/GWG/internal/apperr"
	"github.com/vamshigadde09/GWG/internal/dto"
	"github.com/vamshigadde09/GWG/internal/model"
	"github.com/vamshigadde09/GWG/internal/repository"
)

const (
	// Application numbers are drawn at random from a 6-digit space. Expected
	// O(1) draws while the space is sparse; the bound turns exhaustion into a
	// server error instead of an endless loop as the space fills up.
	maxApplicationNumberDraws = 25

	// Decision writes are conditioned on the request version; a lost race is
	// retried against a fresh snapshot.
	maxDecisionRetries = 3
)

var (
	validTopics = map[string]bool{
		"Coding": true, "Soft Skills": true, "Problem-Solving": true, "Behavioral": true,
	}
	validInterviewTypes = map[string]bool{
		"Technical": true, "HR": true, "Case Study": true, "Behavioral": true,
	}
	validExperienceLevels = map[string]bool{
		"Beginner": true, "Intermediate": true, "Advanced": true,
	}
	validInterviewModes = map[string]bool{
		"Video Call": true, "In-Person": true,
	}
)

// InterviewService is the lifecycle coordinator: it sequences ledger writes,
// outbox events and feedback gating, and owns the state machine
// Pending -> {Accepted, Rejected} -> Completed.
type InterviewService interface {
	CreateRequest(studentID uint, studentName string, req dto.CreateInterviewRequestDTO) (int, error)
	StudentRequests(studentID uint) ([]dto.InterviewRequestDTO, error)
	AcceptedRequests() ([]dto.InterviewRequestDTO, error)
	Accept(applicationNumber int, teacherID uint, acceptedResponse string) error
	Reject(applicationNumber int, teacherID uint, reason string) error
	SetAttendance(applicationNumber int, attendance string) (*dto.InterviewRequestDTO, error)
	Withdraw(requestID uint, studentID uint) error
}

type interviewService struct {
	requestRepo repository.InterviewRequestRepository
	teacherRepo repository.TeacherRepository
	notifier    NotificationService
	policy      string
}

func NewInterviewService(
	requestRepo repository.InterviewRequestRepository,
	teacherRepo repository.TeacherRepository,
	notifier NotificationService,
	cfg *config.Config,
) InterviewService {
	return &interviewService{
		requestRepo: requestRepo,
		teacherRepo: teacherRepo,
		notifier:    notifier,
		policy:      cfg.Interview.AcceptancePolicy,
	}
}

func (s *interviewService) CreateRequest(studentID uint, studentName string, req dto.CreateInterviewRequestDTO) (int, error) {
	if err := validateCreateRequest(req); err != nil {
		return 0, err
	}

	date, err := parseRequestDate(req.Date)
	if err != nil {
		return 0, err
	}

	applicationNumber, err := s.generateApplicationNumber()
	if err != nil {
		return 0, err
	}

	request := model.InterviewRequest{
		ApplicationNumber: applicationNumber,
		StudentID:         studentID,
		StudentName:       studentName,
		Name:              req.Name,
		Email:             req.Email,
		Topic:             req.Topic,
		Skills:            req.Skills,
		InterviewType:     req.InterviewType,
		ExperienceLevel:   req.ExperienceLevel,
		Date:              date,
		StartTime:         req.StartTime,
		InterviewMode:     req.InterviewMode,
		DriveLink:         req.DriveLink,
		ResourcesLink:     req.ResourcesLink,
		Notes:             req.Notes,
		Status:            model.StatusPending,
		Attendance:        model.AttendanceAbsent,
		NoTeacher:         len(req.Teacher) == 0,
	}

	teacherIDs := make([]uint, 0, len(req.Teacher))
	for _, ref := range req.Teacher {
		request.Teachers = append(request.Teachers, model.TeacherAssignment{
			TeacherID: ref.TeacherID,
			Status:    model.StatusPending,
		})
		teacherIDs = append(teacherIDs, ref.TeacherID)
	}

	event := &model.LifecycleEvent{
		ApplicationNumber: applicationNumber,
		Type:              model.EventRequestCreated,
		Payload: model.EventPayload{
			TeacherIDs: teacherIDs,
			Snapshot:   requestSnapshot(&request),
		},
	}

	if err := s.requestRepo.Create(&request, event); err != nil {
		log.Error().Err(err).Int("applicationNumber", applicationNumber).Msg("CreateRequest: ledger write failed")
		return 0, fmt.Errorf("%w: creating interview request: %v", apperr.ErrServer, err)
	}

	log.Info().Int("applicationNumber", applicationNumber).Uint("studentID", studentID).Int("teachers", len(teacherIDs)).Msg("Interview request created")

	// Fan-out is best effort; the ledger write already committed and the
	// replay job will pick the event up if this fails.
	s.projectBestEffort("CreateRequest")

	return applicationNumber, nil
}

func (s *interviewService) StudentRequests(studentID uint) ([]dto.InterviewRequestDTO, error) {
	requests, err := s.requestRepo.FindByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching student requests: %v", apperr.ErrServer, err)
	}
	return s.toRequestDTOs(requests), nil
}

func (s *interviewService) AcceptedRequests() ([]dto.InterviewRequestDTO, error) {
	requests, err := s.requestRepo.FindAccepted()
	if err != nil {
		return nil, fmt.Errorf("%w: fetching accepted requests: %v", apperr.ErrServer, err)
	}
	return s.toRequestDTOs(requests), nil
}

func (s *interviewService) Accept(applicationNumber int, teacherID uint, acceptedResponse string) error {
	return s.decide(applicationNumber, teacherID, model.StatusAccepted, acceptedResponse)
}

func (s *interviewService) Reject(applicationNumber int, teacherID uint, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", apperr.ErrValidation)
	}
	return s.decide(applicationNumber, teacherID, model.StatusRejected, reason)
}

// decide applies one teacher's response and recomputes the global status from
// a fresh snapshot of all sub-statuses, inside a versioned update.
func (s *interviewService) decide(applicationNumber int, teacherID uint, decision, responseText string) error {
	for attempt := 0; attempt < maxDecisionRetries; attempt++ {
		request, err := s.requestRepo.FindByApplicationNumber(applicationNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: interview request %d", apperr.ErrNotFound, applicationNumber)
			}
			return fmt.Errorf("%w: loading interview request: %v", apperr.ErrServer, err)
		}

		if request.Status == model.StatusCompleted {
			return fmt.Errorf("%w: request %d is already completed", apperr.ErrConflict, applicationNumber)
		}

		var assignment *model.TeacherAssignment
		for i := range request.Teachers {
			if request.Teachers[i].TeacherID == teacherID {
				assignment = &request.Teachers[i]
				break
			}
		}
		if assignment == nil {
			return fmt.Errorf("%w: teacher %d on request %d", apperr.ErrNotAssociated, teacherID, applicationNumber)
		}

		if assignment.Status != model.StatusPending {
			// Decisions are final. Allowing a flip would let the global status
			// move laterally, e.g. Rejected -> Accepted on a one-teacher request.
			return fmt.Errorf("%w: teacher %d already responded to request %d", apperr.ErrConflict, teacherID, applicationNumber)
		}

		assignment.Status = decision
		if decision == model.StatusRejected {
			assignment.RejectionReason = responseText
		} else {
			assignment.AcceptedResponse = responseText
		}

		subStatuses := make([]string, 0, len(request.Teachers))
		for i := range request.Teachers {
			subStatuses = append(subStatuses, request.Teachers[i].Status)
		}
		newGlobal := computeGlobalStatus(subStatuses, s.policy)
		if model.StatusRank(newGlobal) < model.StatusRank(request.Status) {
			// Never regress the global status (e.g. an Accepted request must
			// not fall back to Pending because another teacher rejected).
			newGlobal = request.Status
		}

		eventType := model.EventTeacherAccepted
		if decision == model.StatusRejected {
			eventType = model.EventTeacherRejected
		}
		event := &model.LifecycleEvent{
			ApplicationNumber: applicationNumber,
			Type:              eventType,
			Payload: model.EventPayload{
				TeacherID: teacherID,
				Status:    decision,
			},
		}

		ok, err := s.requestRepo.SaveDecision(request.ID, request.Version, newGlobal, assignment, event)
		if err != nil {
			return fmt.Errorf("%w: saving teacher decision: %v", apperr.ErrServer, err)
		}
		if !ok {
			log.Warn().Int("applicationNumber", applicationNumber).Uint("teacherID", teacherID).Int("attempt", attempt+1).Msg("Decision lost a version race, retrying")
			continue
		}

		log.Info().Int("applicationNumber", applicationNumber).Uint("teacherID", teacherID).Str("decision", decision).Str("globalStatus", newGlobal).Msg("Teacher decision recorded")
		s.projectBestEffort("decide")
		return nil
	}
	return fmt.Errorf("%w: concurrent updates on request %d, please retry", apperr.ErrConflict, applicationNumber)
}

func (s *interviewService) SetAttendance(applicationNumber int, attendance string) (*dto.InterviewRequestDTO, error) {
	if attendance != model.AttendancePresent && attendance != model.AttendanceAbsent {
		return nil, fmt.Errorf("%w: attendance must be Present or Absent", apperr.ErrValidation)
	}
	request, err := s.requestRepo.UpdateAttendance(applicationNumber, attendance)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: interview request %d", apperr.ErrNotFound, applicationNumber)
		}
		return nil, fmt.Errorf("%w: updating attendance: %v", apperr.ErrServer, err)
	}
	dtos := s.toRequestDTOs([]model.InterviewRequest{*request})
	return &dtos[0], nil
}

func (s *interviewService) Withdraw(requestID uint, studentID uint) error {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: interview request %d", apperr.ErrNotFound, requestID)
		}
		return fmt.Errorf("%w: loading interview request: %v", apperr.ErrServer, err)
	}
	if request.StudentID != studentID {
		return fmt.Errorf("%w: request %d belongs to another student", apperr.ErrForbidden, requestID)
	}
	if err := s.requestRepo.Delete(requestID); err != nil {
		return fmt.Errorf("%w: withdrawing request: %v", apperr.ErrServer, err)
	}
	log.Info().Uint("requestID", requestID).Uint("studentID", studentID).Msg("Interview request withdrawn")
	return nil
}

func (s *interviewService) generateApplicationNumber() (int, error) {
	for i := 0; i < maxApplicationNumberDraws; i++ {
		n := 100000 + rand.Intn(900000)
		exists, err := s.requestRepo.HasApplicationNumber(n)
		if err != nil {
			return 0, fmt.Errorf("%w: checking application number: %v", apperr.ErrServer, err)
		}
		if !exists {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: could not allocate a unique application number", apperr.ErrServer)
}

func (s *interviewService) projectBestEffort(op string) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Project(); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("Inline notification projection failed, replay job will retry")
	}
}

// toRequestDTOs maps requests to their API shape with teacher identity/skills
// resolved for display.
func (s *interviewService) toRequestDTOs(requests []model.InterviewRequest) []dto.InterviewRequestDTO {
	teacherIDSet := make(map[uint]bool)
	for i := range requests {
		for j := range requests[i].Teachers {
			teacherIDSet[requests[i].Teachers[j].TeacherID] = true
		}
	}
	teacherIDs := make([]uint, 0, len(teacherIDSet))
	for id := range teacherIDSet {
		teacherIDs = append(teacherIDs, id)
	}

	profileByID := make(map[uint]model.TeacherProfile)
	if len(teacherIDs) > 0 && s.teacherRepo != nil {
		profiles, err := s.teacherRepo.FindByIDs(teacherIDs)
		if err != nil {
			log.Warn().Err(err).Msg("Could not resolve teacher profiles for display")
		}
		for _, p := range profiles {
			profileByID[p.ID] = p
		}
	}

	dtos := make([]dto.InterviewRequestDTO, 0, len(requests))
	for i := range requests {
		request := &requests[i]
		var out dto.InterviewRequestDTO
		if err := copier.Copy(&out, request); err != nil {
			log.Error().Err(err).Uint("requestID", request.ID).Msg("Error copying request to DTO")
			continue
		}
		out.Skills = []string(request.Skills)
		out.Teacher = make([]dto.TeacherAssignmentDTO, 0, len(request.Teachers))
		for j := range request.Teachers {
			assignment := &request.Teachers[j]
			entry := dto.TeacherAssignmentDTO{
				TeacherID:        assignment.TeacherID,
				Status:           assignment.Status,
				RejectionReason:  assignment.RejectionReason,
				AcceptedResponse: assignment.AcceptedResponse,
			}
			if profile, ok := profileByID[assignment.TeacherID]; ok {
				entry.Teacher = &dto.TeacherSummaryDTO{
					ID:          profile.ID,
					Name:        profile.Name,
					Designation: profile.Designation,
					Skills:      []string(profile.Skills),
				}
			}
			out.Teacher = append(out.Teacher, entry)
		}
		dtos = append(dtos, out)
	}
	return dtos
}

func validateCreateRequest(req dto.CreateInterviewRequestDTO) error {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Topic == "" {
		missing = append(missing, "topic")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.StartTime == "" {
		missing = append(missing, "startTime")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, missing)
	}

	if !validTopics[req.Topic] {
		return fmt.Errorf("%w: unknown topic %q", apperr.ErrValidation, req.Topic)
	}
	if req.InterviewType != "" && !validInterviewTypes[req.InterviewType] {
		return fmt.Errorf("%w: unknown interview type %q", apperr.ErrValidation, req.InterviewType)
	}
	if req.ExperienceLevel != "" && !validExperienceLevels[req.ExperienceLevel] {
		return fmt.Errorf("%w: unknown experience level %q", apperr.ErrValidation, req.ExperienceLevel)
	}
	if req.InterviewMode != "" && !validInterviewModes[req.InterviewMode] {
		return fmt.Errorf("%w: unknown interview mode %q", apperr.ErrValidation, req.InterviewMode)
	}

	if len(req.Teacher) == 0 && !req.NoTeacher {
		return fmt.Errorf("%w: no teacher selected, please select a teacher", apperr.ErrValidation)
	}
	return nil
}

func parseRequestDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC3339", apperr.ErrValidation)
}

// computeGlobalStatus derives the global status from all teacher
// sub-statuses. All addressed teachers rejecting yields Rejected; acceptance
// depends on the configured policy.
func computeGlobalStatus(subStatuses []string, policy string) string {
	if len(subStatuses) == 0 {
		return model.StatusPending
	}
	allRejected := true
	allAccepted := true
	anyAccepted := false
	for _, status := range subStatuses {
		if status != model.StatusRejected {
			allRejected = false
		}
		if status == model.StatusAccepted || status == model.StatusCompleted {
			anyAccepted = true
		} else {
			allAccepted = false
		}
	}
	if allRejected {
		return model.StatusRejected
	}
	if policy == config.PolicyUnanimous {
		if allAccepted {
			return model.StatusAccepted
		}
		return model.StatusPending
	}
	if anyAccepted {
		return model.StatusAccepted
	}
	return model.StatusPending
}

func requestSnapshot(request *model.InterviewRequest) model.NotificationDetails {
	return model.NotificationDetails{
		StudentName:     request.StudentName,
		Email:           request.Email,
		Topic:           request.Topic,
		Skills:          []string(request.Skills),
		InterviewType:   request.InterviewType,
		ExperienceLevel: request.ExperienceLevel,
		Date:            request.Date.Format("2006-01-02"),
		StartTime:       request.StartTime,
		InterviewMode:   request.InterviewMode,
		DriveLink:       request.DriveLink,
		ResourcesLink:   request.ResourcesLink,
	}
}
