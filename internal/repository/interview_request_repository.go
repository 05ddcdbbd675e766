package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vamshigadde09/GWG/internal/model"
)

type InterviewRequestRepository interface {
	// Create persists the request together with its outbox event in one
	// transaction. The unique index on application_number backs invariant
	// checks done by the caller.
	Create(req *model.InterviewRequest, event *model.LifecycleEvent) error
	HasApplicationNumber(n int) (bool, error)
	FindByApplicationNumber(n int) (*model.InterviewRequest, error)
	FindByID(id uint) (*model.InterviewRequest, error)
	FindByStudent(studentID uint) ([]model.InterviewRequest, error)
	FindAccepted() ([]model.InterviewRequest, error)
	// SaveDecision writes one teacher's sub-record plus the recomputed global
	// status, conditioned on the version the caller read. Returns false when
	// the version moved underneath the caller (retry with a fresh snapshot).
	SaveDecision(requestID uint, expectedVersion uint, globalStatus string, assignment *model.TeacherAssignment, event *model.LifecycleEvent) (bool, error)
	UpdateAttendance(applicationNumber int, attendance string) (*model.InterviewRequest, error)
	Delete(id uint) error
}

type interviewRequestRepository struct {
	db *gorm.DB
}

func NewInterviewRequestRepository(db *gorm.DB) InterviewRequestRepository {
	return &interviewRequestRepository{db: db}
}

func (r *interviewRequestRepository) Create(req *model.InterviewRequest, event *model.LifecycleEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil { // GORM creates associated TeacherAssignments
			return err
		}
		if event != nil {
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *interviewRequestRepository) HasApplicationNumber(n int) (bool, error) {
	var count int64
	err := r.db.Model(&model.InterviewRequest{}).Where("application_number = ?", n).Count(&count).Error
	return count > 0, err
}

func (r *interviewRequestRepository) FindByApplicationNumber(n int) (*model.InterviewRequest, error) {
	var req model.InterviewRequest
	err := r.db.Preload("Teachers").Where("application_number = ?", n).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &req, err
}

func (r *interviewRequestRepository) FindByID(id uint) (*model.InterviewRequest, error) {
	var req model.InterviewRequest
	err := r.db.Preload("Teachers").First(&req, id).Error
	return &req, err
}

func (r *interviewRequestRepository) FindByStudent(studentID uint) ([]model.InterviewRequest, error) {
	var reqs []model.InterviewRequest
	err := r.db.Preload("Teachers").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *interviewRequestRepository) FindAccepted() ([]model.InterviewRequest, error) {
	var reqs []model.InterviewRequest
	err := r.db.Preload("Teachers").
		Where("status = ?", model.StatusAccepted).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *interviewRequestRepository) SaveDecision(requestID uint, expectedVersion uint, globalStatus string, assignment *model.TeacherAssignment, event *model.LifecycleEvent) (bool, error) {
	conflict := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.InterviewRequest{}).
			Where("id = ? AND version = ?", requestID, expectedVersion).
			Updates(map[string]interface{}{
				"status":  globalStatus,
				"version": gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			conflict = true
			return gorm.ErrInvalidTransaction // force rollback, surfaced as conflict
		}
		if err := tx.Model(&model.TeacherAssignment{}).
			Where("id = ?", assignment.ID).
			Updates(map[string]interface{}{
				"status":            assignment.Status,
				"rejection_reason":  assignment.RejectionReason,
				"accepted_response": assignment.AcceptedResponse,
			}).Error; err != nil {
			return err
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

func (r *interviewRequestRepository) UpdateAttendance(applicationNumber int, attendance string) (*model.InterviewRequest, error) {
	res := r.db.Model(&model.InterviewRequest{}).
		Where("application_number = ?", applicationNumber).
		Update("attendance", attendance)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByApplicationNumber(applicationNumber)
}

func (r *interviewRequestRepository) Delete(id uint) error {
	// Hard delete. A soft-deleted row would keep its application_number
	// occupied in the unique index while being invisible to
	// HasApplicationNumber, so a later create could draw the number, pass
	// the existence check and still fail on the index.
	return r.db.Unscoped().Delete(&model.InterviewRequest{}, id).Error
}
