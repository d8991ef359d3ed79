package models

import "gorm.io/datatypes"

// Profile - публичные поля пользователя (и соискателя, и компании)
type Profile struct {
	BaseModel
	UserID   string         `gorm:"not null;uniqueIndex" json:"user_id"`
	Name     string         `gorm:"not null" json:"name"`
	Location string         `json:"location"`
	Headline string         `json:"headline"`
	Bio      string         `json:"bio"`
	Skills   datatypes.JSON `gorm:"type:jsonb" json:"skills"`
}

type Company struct {
	BaseModel
	// Владелец - пользователь с ролью company
	OwnerID     string `gorm:"not null;uniqueIndex" json:"owner_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`

	Jobs []Job `gorm:"foreignKey:CompanyID" json:"-"`
}
