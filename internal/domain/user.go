package domain

import "time"

// User профиль пользователя. Идентификатор приходит из внешнего auth-провайдера,
// поэтому хранится как строка, а не uuid.
type User struct {
	ID              string    `json:"id" db:"id"`
	Email           *string   `json:"email,omitempty" db:"email"`
	FirstName       *string   `json:"first_name,omitempty" db:"first_name"`
	LastName        *string   `json:"last_name,omitempty" db:"last_name"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty" db:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
