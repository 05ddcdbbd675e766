package dto

// TeacherRefDTO addresses one teacher on a new interview request.
type TeacherRefDTO struct {
	TeacherID uint `json:"teacherId" binding:"required"`
}

type CreateInterviewRequestDTO struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Topic           string          `json:"topic"`
	Skills          []string        `json:"skills"`
	InterviewType   string          `json:"interviewType"`
	ExperienceLevel string          `json:"experienceLevel"`
	Date            string          `json:"date"` // "2006-01-02" or RFC3339
	StartTime       string          `json:"startTime"`
	InterviewMode   string          `json:"interviewMode"`
	Teacher         []TeacherRefDTO `json:"teacher"`
	DriveLink       string          `json:"driveLink,omitempty"`
	ResourcesLink   string          `json:"resourcesLink,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	NoTeacher       bool            `json:"noteacher,omitempty"`
}

type AcceptRequestDTO struct {
	ApplicationNumber int    `json:"applicationNumber" binding:"required"`
	TeacherID         uint   `json:"teacherId" binding:"required"`
	AcceptedResponse  string `json:"acceptedResponse"`
}

type RejectRequestDTO struct {
	ApplicationNumber int    `json:"applicationNumber" binding:"required"`
	TeacherID         uint   `json:"teacherId" binding:"required"`
	Reason            string `json:"reason"`
}

type AttendanceDTO struct {
	ApplicationNumber int    `json:"applicationNumber" binding:"required"`
	Attendance        string `json:"attendance" binding:"required"` // "Present", "Absent"
}

type DetailedFeedbackDTO struct {
	OpeningStatement          string `json:"openingStatement,omitempty"`
	TechnicalAnalysis         string `json:"technicalAnalysis,omitempty"`
	ProblemSolvingDiscussion  string `json:"problemSolvingDiscussion,omitempty"`
	CommunicationObservations string `json:"communicationObservations,omitempty"`
	BehavioralAssessment      string `json:"behavioralAssessment,omitempty"`
	ClosingRemarks            string `json:"closingRemarks,omitempty"`
}

type FeedbackPayloadDTO struct {
	InterviewRequestID        uint                `json:"interviewRequestId"`
	StudentID                 uint                `json:"studentId"`
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
}

type SubmitFeedbackDTO struct {
	ApplicationNumber int                `json:"applicationNumber" binding:"required"`
	Feedback          FeedbackPayloadDTO `json:"feedback" binding:"required"`
}

type UpdateNotificationStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityDTO struct {
	Availability      []string `json:"availability"`
	AvailabilityNotes string   `json:"availabilityNotes,omitempty"`
}

type TeacherProfileUpdateDTO struct {
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

type RegisterDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=student teacher"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
