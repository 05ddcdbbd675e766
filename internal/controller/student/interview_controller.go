package student

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

type InterviewController struct {
	interviewService service.InterviewService
	feedbackService  service.FeedbackService
}

func NewInterviewController(interviewService service.InterviewService, feedbackService service.FeedbackService) *InterviewController {
	return &InterviewController{
		interviewService: interviewService,
		feedbackService:  feedbackService,
	}
}

// CreateRequest godoc
// @Summary (Student) Create a mock interview request
// @Description Creates the request in Pending state and fans a notification out to every addressed teacher.
// @Tags Student - Interviews
// @Accept json
// @Produce json
// @Param request body dto.CreateInterviewRequestDTO true "Interview request draft"
// @Success 201 {object} dto.CreateInterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Required fields are missing"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /interview/create [post]
func (c *InterviewController) CreateRequest(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}

	var req dto.CreateInterviewRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateRequest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	applicationNumber, err := c.interviewService.CreateRequest(claims.UserID, req.Name, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateInterviewResponseDTO{ApplicationNumber: applicationNumber})
}

// StudentRequests godoc
// @Summary (Student) List own interview requests
// @Description Returns the caller's requests with addressed teacher identity and skills resolved.
// @Tags Student - Interviews
// @Produce json
// @Success 200 {array} dto.InterviewRequestDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /interview/studentRequests [get]
func (c *InterviewController) StudentRequests(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}
	requests, err := c.interviewService.StudentRequests(claims.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// Withdraw godoc
// @Summary (Student) Withdraw an interview request
// @Description Hard-deletes the request. Only the owning student may withdraw.
// @Tags Student - Interviews
// @Produce json
// @Param id path int true "Interview request ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /interview/{id} [delete]
func (c *InterviewController) Withdraw(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}
	requestID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request ID format"})
		return
	}
	if err := c.interviewService.Withdraw(uint(requestID), claims.UserID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Interview request withdrawn."})
}

// Feedback godoc
// @Summary (Student) List received feedback
// @Description Feedback joined with the originating request's application number, topic and date.
// @Tags Student - Interviews
// @Produce json
// @Success 200 {array} dto.StudentFeedbackDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /interview/feedback [get]
func (c *InterviewController) Feedback(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing identity"})
		return
	}
	feedback, err := c.feedbackService.ListForStudent(claims.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}
