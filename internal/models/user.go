package models

import "time"

type User struct {
	BaseModel
	// Email хранится в нижнем регистре: уникальность без учета регистра
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Пустой для пользователей, созданных только через OAuth
	PasswordHash string   `gorm:"column:password_hash" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	// ID во внешнем провайдере идентификации (OAuth)
	ExternalID *string `gorm:"uniqueIndex" json:"-"`

	// Relations
	Profile  *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Company  *Company  `gorm:"foreignKey:OwnerID" json:"company,omitempty"`
	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
}

// Session - серверная запись о выданном refresh-токене.
// Хранится только односторонний хеш токена, никогда - сам токен.
type Session struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}
