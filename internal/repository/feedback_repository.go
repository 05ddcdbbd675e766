package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/internal/model"
)

// StudentFeedbackRow joins a feedback record with the originating request's
// display metadata.
type StudentFeedbackRow struct {
	model.Feedback
	ApplicationNumber int
	Topic             string
	Date              time.Time
}

type FeedbackRepository interface {
	// SubmitWithCompletion persists the feedback and, in the same transaction,
	// links it on the request, flips the global status to Completed and
	// promotes the accepted assignments. Conditioned on the version the
	// caller read; returns false on a version conflict.
	SubmitWithCompletion(fb *model.Feedback, requestID uint, expectedVersion uint, acceptedAssignmentIDs []uint, event *model.LifecycleEvent) (bool, error)
	FindByStudent(studentID uint) ([]StudentFeedbackRow, error)
	FindByID(id uint) (*model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) SubmitWithCompletion(fb *model.Feedback, requestID uint, expectedVersion uint, acceptedAssignmentIDs []uint, event *model.LifecycleEvent) (bool, error) {
	conflict := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fb).Error; err != nil {
			return err
		}
		res := tx.Model(&model.InterviewRequest{}).
			Where("id = ? AND version = ?", requestID, expectedVersion).
			Updates(map[string]interface{}{
				"status":                model.StatusCompleted,
				"is_feedback_submitted": true,
				"feedback_id":           fb.ID,
				"version":               gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			conflict = true
			return gorm.ErrInvalidTransaction
		}
		if len(acceptedAssignmentIDs) > 0 {
			if err := tx.Model(&model.TeacherAssignment{}).
				Where("id IN ?", acceptedAssignmentIDs).
				Update("status", model.StatusCompleted).Error; err != nil {
				return err
			}
		}
		if event != nil {
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if conflict {
		return false, nil
	}
	return err == nil, err
}

func (r *feedbackRepository) FindByStudent(studentID uint) ([]StudentFeedbackRow, error) {
	var rows []StudentFeedbackRow
	err := r.db.Model(&model.Feedback{}).
		Select("feedbacks.*, interview_requests.application_number AS application_number, interview_requests.topic AS topic, interview_requests.date AS date").
		Joins("JOIN interview_requests ON interview_requests.id = feedbacks.interview_request_id").
		Where("feedbacks.student_id = ?", studentID).
		Order("feedbacks.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *feedbackRepository) FindByID(id uint) (*model.Feedback, error) {
	var fb model.Feedback
	err := r.db.First(&fb, id).Error
	return &fb, err
}
