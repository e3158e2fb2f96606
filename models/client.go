package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null" json:"email"`
	Phone        string    `gorm:"not null" json:"phone"`
	SiteLocation string    `gorm:"not null" json:"siteLocation"`

	// Free text or a file URL describing the contract
	ContractDetails string `json:"contractDetails"`

	// A client's projects are linked through Project.ClientID, so creating a
	// project never needs a second write against the client row. Deleting a
	// client leaves its projects in place.
	AssignedProjects []Project `gorm:"foreignKey:ClientID" json:"assignedProjects,omitempty"`

	gorm.Model `json:"-"`
}

func (cl *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return
}
