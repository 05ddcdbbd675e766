package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusRejected  = "Rejected"
	StatusCompleted = "Completed"
)

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

type InterviewRequest struct {
	ID                  uint                `gorm:"primarykey" json:"id"`
	ApplicationNumber   int                 `json:"application_number" gorm:"not null;uniqueIndex"` // 6-digit, human facing
	StudentID           uint                `json:"student_id" gorm:"not null;index"`
	StudentName         string              `json:"student_name" gorm:"not null"`
	Name                string              `json:"name" gorm:"not null"`
	Email               string              `json:"email" gorm:"not null"`
	Topic               string              `json:"topic" gorm:"not null"` // "Coding", "Soft Skills", "Problem-Solving", "Behavioral"
	Skills              pq.StringArray      `json:"skills" gorm:"type:text[]"`
	InterviewType       string              `json:"interview_type"`   // "Technical", "HR", "Case Study", "Behavioral"
	ExperienceLevel     string              `json:"experience_level"` // "Beginner", "Intermediate", "Advanced"
	Date                time.Time           `json:"date" gorm:"not null"`
	StartTime           string              `json:"start_time" gorm:"not null"`
	InterviewMode       string              `json:"interview_mode"` // "Video Call", "In-Person"
	DriveLink           string              `json:"drive_link,omitempty"`
	ResourcesLink       string              `json:"resources_link,omitempty"`
	Notes               string              `json:"notes,omitempty" gorm:"type:text"`
	Status              string              `json:"status" gorm:"default:'Pending'"` // "Pending", "Accepted", "Rejected", "Completed"
	Attendance          string              `json:"attendance" gorm:"default:'Absent'"`
	NoTeacher           bool                `json:"noteacher"` // created with zero teachers addressed
	IsFeedbackSubmitted bool                `json:"is_feedback_submitted"`
	FeedbackID          *uint               `json:"feedback_id,omitempty"`
	Version             uint                `json:"-" gorm:"not null;default:1"` // optimistic concurrency guard
	Teachers            []TeacherAssignment `json:"teacher" gorm:"foreignKey:InterviewRequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
	DeletedAt           gorm.DeletedAt      `gorm:"index" json:"-"`
}

// TeacherAssignment is one addressed teacher on a request, tracked
// independently of the request's global status.
type TeacherAssignment struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	InterviewRequestID uint      `json:"interview_request_id" gorm:"not null;index"`
	TeacherID          uint      `json:"teacher_id" gorm:"not null;index"` // TeacherProfile ID
	Status             string    `json:"status" gorm:"default:'Pending'"`  // "Pending", "Accepted", "Rejected", "Completed"
	RejectionReason    string    `json:"rejection_reason,omitempty"`
	AcceptedResponse   string    `json:"accepted_response,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// StatusRank orders lifecycle states so transitions can be checked for
// monotonicity: Pending -> {Accepted, Rejected} -> Completed.
func StatusRank(status string) int {
	switch status {
	case StatusPending:
		return 0
	case StatusAccepted, StatusRejected:
		return 1
	case StatusCompleted:
		return 2
	default:
		return -1
	}
}
