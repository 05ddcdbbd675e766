package dto

import "time"

// ErrorResponse is the uniform error body returned by every controller.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateInterviewResponseDTO struct {
	ApplicationNumber int `json:"applicationNumber"`
}

// TeacherSummaryDTO is the projection used when resolving addressed teachers
// for display and in teacher search results.
type TeacherSummaryDTO struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Designation string   `json:"designation,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type TeacherAssignmentDTO struct {
	TeacherID        uint               `json:"teacherId"`
	Status           string             `json:"status"`
	RejectionReason  string             `json:"rejectionReason,omitempty"`
	AcceptedResponse string             `json:"acceptedResponse,omitempty"`
	Teacher          *TeacherSummaryDTO `json:"teacher,omitempty"`
}

type InterviewRequestDTO struct {
	ID                  uint                   `json:"id"`
	ApplicationNumber   int                    `json:"applicationNumber"`
	StudentID           uint                   `json:"studentId"`
	StudentName         string                 `json:"studentName"`
	Name                string                 `json:"name"`
	Email               string                 `json:"email"`
	Topic               string                 `json:"topic"`
	Skills              []string               `json:"skills"`
	InterviewType       string                 `json:"interviewType"`
	ExperienceLevel     string                 `json:"experienceLevel"`
	Date                time.Time              `json:"date"`
	StartTime           string                 `json:"startTime"`
	InterviewMode       string                 `json:"interviewMode"`
	DriveLink           string                 `json:"driveLink,omitempty"`
	ResourcesLink       string                 `json:"resourcesLink,omitempty"`
	Notes               string                 `json:"notes,omitempty"`
	Status              string                 `json:"status"`
	Attendance          string                 `json:"attendance"`
	NoTeacher           bool                   `json:"noteacher"`
	IsFeedbackSubmitted bool                   `json:"isFeedbackSubmitted"`
	FeedbackID          *uint                  `json:"feedbackId,omitempty"`
	Teacher             []TeacherAssignmentDTO `json:"teacher"`
	CreatedAt           time.Time              `json:"createdAt"`
}

type NotificationDTO struct {
	ID                uint                   `json:"id"`
	TeacherID         uint                   `json:"teacherId"`
	Type              string                 `json:"type"`
	ApplicationNumber int                    `json:"applicationNumber"`
	Details           NotificationDetailsDTO `json:"details"`
	Status            string                 `json:"status"`
	CreatedAt         time.Time              `json:"createdAt"`
}

type NotificationDetailsDTO struct {
	StudentName     string   `json:"studentName,omitempty"`
	Email           string   `json:"email,omitempty"`
	Topic           string   `json:"topic,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	InterviewType   string   `json:"interviewType,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	Date            string   `json:"date,omitempty"`
	StartTime       string   `json:"startTime,omitempty"`
	InterviewMode   string   `json:"interviewMode,omitempty"`
	DriveLink       string   `json:"driveLink,omitempty"`
	ResourcesLink   string   `json:"resourcesLink,omitempty"`
	FeedbackSummary string   `json:"feedbackSummary,omitempty"`
}

type StudentFeedbackDTO struct {
	ID                        uint                `json:"id"`
	ApplicationNumber         int                 `json:"applicationNumber"`
	Topic                     string              `json:"topic"`
	Date                      time.Time           `json:"date"`
	TeacherID                 uint                `json:"teacherId"`
	CommunicationSkills       string              `json:"communicationSkills"`
	TechnicalKnowledge        string              `json:"technicalKnowledge"`
	ProblemSolvingAbility     string              `json:"problemSolvingAbility"`
	ConfidenceAndBodyLanguage string              `json:"confidenceAndBodyLanguage"`
	TimeManagement            string              `json:"timeManagement"`
	OverallPerformance        string              `json:"overallPerformance"`
	Strengths                 string              `json:"strengths"`
	AreasForImprovement       string              `json:"areasForImprovement"`
	DetailedFeedback          DetailedFeedbackDTO `json:"detailedFeedback"`
	ActionableSuggestions     []string            `json:"actionableSuggestions"`
	AdditionalComments        string              `json:"additionalComments,omitempty"`
	Recommendation            bool                `json:"recommendation"`
	CreatedAt                 time.Time           `json:"createdAt"`
}

type TeacherProfileDTO struct {
	ID                          uint     `json:"id"`
	UserID                      uint     `json:"userId"`
	Name                        string   `json:"name"`
	Designation                 string   `json:"designation,omitempty"`
	Department                  string   `json:"department,omitempty"`
	ContactDetails              string   `json:"contactDetails,omitempty"`
	ProfilePicture              string   `json:"profilePicture,omitempty"`
	Skills                      []string `json:"skills,omitempty"`
	AreasOfExpertise            []string `json:"areasOfExpertise,omitempty"`
	Availability                []string `json:"availability,omitempty"`
	AvailabilityNotes           string   `json:"availabilityNotes,omitempty"`
	PreferredNotificationMethod string   `json:"preferredNotificationMethod,omitempty"`
	Publications                string   `json:"publications,omitempty"`
	LinkedIn                    string   `json:"linkedIn,omitempty"`
	OtherProfessionalLinks      []string `json:"otherProfessionalLinks,omitempty"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type MeDTO struct {
	ID             uint               `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Role           string             `json:"role"`
	TeacherProfile *TeacherProfileDTO `json:"teacherProfile,omitempty"`
	StudentProfile *StudentProfileDTO `json:"studentProfile,omitempty"`
}

type StudentProfileDTO struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"userId"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	Department     string `json:"department,omitempty"`
	Batch          string `json:"batch,omitempty"`
	Program        string `json:"program,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Branch         string `json:"branch,omitempty"`
	LinkedIn       string `json:"linkedIn,omitempty"`
	CareerGoals    string `json:"careerGoals,omitempty"`
}
