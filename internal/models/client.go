package models

import "time"

// Cliente simples, sem login. Telefone e e-mail são livres:
// duplicados são permitidos de propósito.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
