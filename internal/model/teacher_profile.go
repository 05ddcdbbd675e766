package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeacherProfile struct {
	ID                          uint           `gorm:"primarykey" json:"id"`
	UserID                      uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	Name                        string         `json:"name" gorm:"not null"`
	Designation                 string         `json:"designation,omitempty"`
	Department                  string         `json:"department,omitempty"`
	ContactDetails              string         `json:"contact_details,omitempty"`
	ProfilePicture              string         `json:"profile_picture,omitempty"`
	Skills                      pq.StringArray `json:"skills" gorm:"type:text[]"`
	AreasOfExpertise            pq.StringArray `json:"areas_of_expertise" gorm:"type:text[]"`
	Availability                pq.StringArray `json:"availability" gorm:"type:text[]"`
	AvailabilityNotes           string         `json:"availability_notes,omitempty" gorm:"type:text"`
	PreferredNotificationMethod string         `json:"preferred_notification_method,omitempty"` // "email", "whatsapp" (declared, delivery not implemented)
	Publications                string         `json:"publications,omitempty" gorm:"type:text"`
	LinkedIn                    string         `json:"linked_in,omitempty"`
	OtherProfessionalLinks      pq.StringArray `json:"other_professional_links" gorm:"type:text[]"`
	IsProfileUpdated            bool           `json:"is_profile_updated"`
	Notifications               []Notification `json:"notifications,omitempty" gorm:"foreignKey:TeacherProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt                   time.Time      `json:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at"`
	DeletedAt                   gorm.DeletedAt `gorm:"index" json:"-"`
}
