package model

import "time"

const (
	NotificationNewRequest        = "New Interview Request"
	NotificationFeedbackSubmitted = "Feedback Submitted"
)

// NotificationDetails is a point-in-time copy of the request fields taken at
// fan-out time. The inbox stays readable even if the source request later
// changes or is withdrawn.
type NotificationDetails struct {
	StudentName     string   `json:"student_name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Topic           string   `json:"topic,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	InterviewType   string   `json:"interview_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Date            string   `json:"date,omitempty"`
	StartTime       string   `json:"start_time,omitempty"`
	InterviewMode   string   `json:"interview_mode,omitempty"`
	DriveLink       string   `json:"drive_link,omitempty"`
	ResourcesLink   string   `json:"resources_link,omitempty"`
	FeedbackSummary string   `json:"feedback_summary,omitempty"`
}

type Notification struct {
	ID                uint                `gorm:"primarykey" json:"id"`
	TeacherProfileID  uint                `json:"teacher_profile_id" gorm:"not null;index"`
	Type              string              `json:"type" gorm:"not null"`
	ApplicationNumber int                 `json:"application_number" gorm:"not null;index"`
	Details           NotificationDetails `json:"details" gorm:"serializer:json"`
	Status            string              `json:"status" gorm:"default:'Pending'"` // mirrors the addressed teacher's sub-status, best effort
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}
