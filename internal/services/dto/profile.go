package dto

// UpdateProfileRequest - обновление профиля соискателя
type UpdateProfileRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Location *string  `json:"location" validate:"omitempty,max=100"`
	Headline *string  `json:"headline" validate:"omitempty,max=150"`
	Bio      *string  `json:"bio" validate:"omitempty,max=3000"`
	Skills   []string `json:"skills" validate:"omitempty,max=50,dive,min=1,max=50"`
}
