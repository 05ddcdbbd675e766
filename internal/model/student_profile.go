package model

import (
	"time"

	"gorm.io/gorm"
)

type StudentProfile struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	UserID           uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	Name             string         `json:"name" gorm:"not null"`
	Phone            string         `json:"phone,omitempty"`
	Department       string         `json:"department,omitempty"`
	Batch            string         `json:"batch,omitempty"`
	Program          string         `json:"program,omitempty"`
	Specialization   string         `json:"specialization,omitempty"`
	Branch           string         `json:"branch,omitempty"`
	LinkedIn         string         `json:"linked_in,omitempty"`
	CareerGoals      string         `json:"career_goals,omitempty" gorm:"type:text"`
	GPA              string         `json:"gpa,omitempty"`
	AdditionalNotes  string         `json:"additional_notes,omitempty" gorm:"type:text"`
	ProfilePicture   string         `json:"profile_picture,omitempty"`
	IsProfileUpdated bool           `json:"is_profile_updated"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
