package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DetailedFeedback is the nested narrative block of a feedback record.
type DetailedFeedback struct {
	OpeningStatement          string `json:"opening_statement,omitempty"`
	TechnicalAnalysis         string `json:"technical_analysis,omitempty"`
	ProblemSolvingDiscussion  string `json:"problem_solving_discussion,omitempty"`
	CommunicationObservations string `json:"communication_observations,omitempty"`
	BehavioralAssessment      string `json:"behavioral_assessment,omitempty"`
	ClosingRemarks            string `json:"closing_remarks,omitempty"`
}

// Feedback is exclusively owned by one InterviewRequest and may only exist
// once attendance was confirmed as Present.
type Feedback struct {
	ID                 uint `gorm:"primarykey" json:"id"`
	InterviewRequestID uint `json:"interview_request_id" gorm:"not null;uniqueIndex"`
	StudentID          uint `json:"student_id" gorm:"not null;index"`
	TeacherID          uint `json:"teacher_id" gorm:"not null;index"`

	CommunicationSkills       string `json:"communication_skills" gorm:"not null"`
	TechnicalKnowledge        string `json:"technical_knowledge" gorm:"not null"`
	ProblemSolvingAbility     string `json:"problem_solving_ability" gorm:"not null"`
	ConfidenceAndBodyLanguage string `json:"confidence_and_body_language" gorm:"not null"`
	TimeManagement            string `json:"time_management" gorm:"not null"`
	OverallPerformance        string `json:"overall_performance" gorm:"not null"`

	Strengths           string           `json:"strengths" gorm:"type:text;not null"`
	AreasForImprovement string           `json:"areas_for_improvement" gorm:"type:text;not null"`
	Detailed            DetailedFeedback `json:"detailed_feedback" gorm:"serializer:json"`

	ActionableSuggestions pq.StringArray `json:"actionable_suggestions" gorm:"type:text[]"`
	AdditionalComments    string         `json:"additional_comments,omitempty" gorm:"type:text"`
	Recommendation        bool           `json:"recommendation"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
