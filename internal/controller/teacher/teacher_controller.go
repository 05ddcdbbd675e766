package teacher

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vamshigadde09/GWG/internal/controller"
	"github.com/vamshigadde09/GWG/internal/dto"
	"github.com/vamshigadde09/GWG/internal/middleware"
	"github.com/vamshigadde09/GWG/internal/service"
)

type TeacherController struct {
	interviewService    service.InterviewService
	feedbackService     service.FeedbackService
	notificationService service.NotificationService
	teacherService      service.TeacherService
}

func NewTeacherController(
	interviewService service.InterviewService,
	feedbackService service.FeedbackService,
	notificationService service.NotificationService,
	teacherService service.TeacherService,
) *TeacherController {
	return &TeacherController{
		interviewService:    interviewService,
		feedbackService:     feedbackService,
		notificationService: notificationService,
		teacherService:      teacherService,
	}
}

// Accept godoc
// @Summary (Teacher) Accept an interview request
// @Description Records the teacher's acceptance; the global status moves per the configured acceptance policy.
// @Tags Teacher - Interviews
// @Accept json
// @Produce json
// @Param request body dto.AcceptRequestDTO true "Acceptance"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown application number or teacher not associated"
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /interview/accept [post]
func (c *TeacherController) Accept(ctx *gin.Context) {
	var req dto.AcceptRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.interviewService.Accept(req.ApplicationNumber, req.TeacherID, req.AcceptedResponse); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Acceptance response updated successfully."})
}

// Reject godoc
// @Summary (Teacher) Reject an interview request
// @Description Records the rejection reason; when every addressed teacher rejected, the request becomes Rejected.
// @Tags Teacher - Interviews
// @Accept json
// @Produce json
// @Param request body dto.RejectRequestDTO true "Rejection"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Rejection reason is required"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /interview/reject [post]
func (c *TeacherController) Reject(ctx *gin.Context) {
	var req dto.RejectRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.interviewService.Reject(req.ApplicationNumber, req.TeacherID, req.Reason); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Rejection reason updated successfully."})
}

// AcceptedRequests godoc
// @Summary (Teacher) List accepted interview requests
// @Tags Teacher - Interviews
// @Produce json
// @Success 200 {array} dto.InterviewRequestDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /interview/acceptedRequests [get]
func (c *TeacherController) AcceptedRequests(ctx *gin.Context) {
	requests, err := c.interviewService.AcceptedRequests()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// Attendance godoc
// @Summary (Teacher) Mark attendance for an interview
// @Description Idempotent upsert of the attendance field. Does not itself change the lifecycle status.
// @Tags Teacher - Interviews
// @Accept json
// @Produce json
// @Param request body dto.AttendanceDTO true "Attendance mark"
// @Success 200 {object} dto.InterviewRequestDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /interview/attendance [put]
func (c *TeacherController) Attendance(ctx *gin.Context) {
	var req dto.AttendanceDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	updated, err := c.interviewService.SetAttendance(req.ApplicationNumber, req.Attendance)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// SubmitFeedback godoc
// @Summary (Teacher) Submit feedback for a completed interview
// @Description Requires attendance marked Present. Completes the request and promotes the accepted teacher's sub-status.
// @Tags Teacher - Interviews
// @Accept json
// @Produce json
// @Param request body dto.SubmitFeedbackDTO true "Feedback"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or attendance not confirmed"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Feedback already submitted"
// @Security BearerAuth
// @Router /interview/submitFeedback [post]
func (c *TeacherController) SubmitFeedback(ctx *gin.Context) {
	var req dto.SubmitFeedbackDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	log.Info().Int("applicationNumber", req.ApplicationNumber).Msg("Received feedback submission")
	if _, err := c.feedbackService.Submit(req.ApplicationNumber, req.Feedback); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Feedback submitted successfully."})
}

// Notifications godoc
// @Summary (Teacher) List inbox notifications
// @Tags Teacher - Notifications
// @Produce json
// @Success 200 {array} dto.NotificationDTO
// @Failure 404 {object} dto.ErrorResponse "Teacher profile not found"
// @Security BearerAuth
// @Router /teacher/notifications [get]
func (c *TeacherController) Notifications(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}
	notifications, err := c.notificationService.TeacherInbox(claims.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

// UpdateNotificationStatus godoc
// @Summary (Teacher) Update the status shown on an inbox entry
// @Description Touches the inbox mirror only; the request ledger is unaffected.
// @Tags Teacher - Notifications
// @Accept json
// @Produce json
// @Param applicationNumber path int true "Application number"
// @Param request body dto.UpdateNotificationStatusDTO true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/notifications/{applicationNumber}/status [put]
func (c *TeacherController) UpdateNotificationStatus(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}
	applicationNumber, err := strconv.Atoi(ctx.Param("applicationNumber"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid application number format"})
		return
	}
	var req dto.UpdateNotificationStatusDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.notificationService.UpdateStatus(claims.UserID, applicationNumber, req.Status); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Status updated successfully."})
}

// UpdateProfile godoc
// @Summary (Teacher) Update own profile
// @Tags Teacher - Profile
// @Accept json
// @Produce json
// @Param request body dto.TeacherProfileUpdateDTO true "Profile"
// @Success 200 {object} dto.TeacherProfileDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/profile [put]
func (c *TeacherController) UpdateProfile(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}
	var req dto.TeacherProfileUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	profile, err := c.teacherService.UpdateProfile(claims.UserID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// Availability godoc
// @Summary (Teacher) Get own availability
// @Tags Teacher - Profile
// @Produce json
// @Success 200 {object} dto.AvailabilityDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/availability [get]
func (c *TeacherController) Availability(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}
	availability, err := c.teacherService.Availability(claims.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, availability)
}

// UpdateAvailability godoc
// @Summary (Teacher) Update own availability
// @Tags Teacher - Profile
// @Accept json
// @Produce json
// @Param request body dto.AvailabilityDTO true "Availability slots"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Availability cannot be empty"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/availability [put]
func (c *TeacherController) UpdateAvailability(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}
	var req dto.AvailabilityDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.teacherService.UpdateAvailability(claims.UserID, req); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Availability updated successfully."})
}

// Search godoc
// @Summary Search teachers by name or skill
// @Tags Teacher - Profile
// @Produce json
// @Param name query string false "Name filter"
// @Param skills query string false "Skill filter"
// @Success 200 {array} dto.TeacherSummaryDTO
// @Security BearerAuth
// @Router /teacher/search [get]
func (c *TeacherController) Search(ctx *gin.Context) {
	summaries, err := c.teacherService.Search(ctx.Query("name"), ctx.Query("skills"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// Details godoc
// @Summary Get a teacher's public profile
// @Tags Teacher - Profile
// @Produce json
// @Param id path int true "Teacher profile ID"
// @Success 200 {object} dto.TeacherProfileDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/{id} [get]
func (c *TeacherController) Details(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid teacher ID format"})
		return
	}
	profile, err := c.teacherService.Details(uint(id))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
