package model

import "time"

const (
	EventRequestCreated    = "request.created"
	EventTeacherAccepted   = "teacher.accepted"
	EventTeacherRejected   = "teacher.rejected"
	EventFeedbackSubmitted = "feedback.submitted"
)

// EventPayload carries everything the notification projector needs, so that
// projection never has to re-read the (possibly already mutated) request.
type EventPayload struct {
	TeacherIDs []uint              `json:"teacher_ids,omitempty"` // addressed teachers on request.created
	TeacherID  uint                `json:"teacher_id,omitempty"`  // deciding teacher on accepted/rejected, notified teacher on feedback.submitted
	Status     string              `json:"status,omitempty"`
	Snapshot   NotificationDetails `json:"snapshot,omitempty"`
}

// LifecycleEvent is the outbox row appended in the same transaction as the
// ledger write that triggered it. The projector marks it Projected only after
// the inbox writes went through, so a crash in between is repaired by replay.
type LifecycleEvent struct {
	ID                uint         `gorm:"primarykey" json:"id"`
	ApplicationNumber int          `json:"application_number" gorm:"not null;index"`
	Type              string       `json:"type" gorm:"not null"`
	Payload           EventPayload `json:"payload" gorm:"serializer:json"`
	Projected         bool         `json:"projected" gorm:"not null;default:false;index"`
	CreatedAt         time.Time    `json:"created_at"`
}
