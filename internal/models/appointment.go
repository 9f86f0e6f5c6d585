package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	// Horário local, precisão de minuto, sem timezone.
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	DurationMin int       `gorm:"not null;default:60" json:"duration_min"`

	// Livre: o banco aceita qualquer string, sem máquina de estados.
	Status string `gorm:"size:20;default:'Scheduled'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
