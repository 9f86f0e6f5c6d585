package models

import "time"

// Observação de atendimento. Imutável depois de criada: não existe
// edição nem exclusão, só a remoção em cascata junto com o cliente.
type Note struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Content string `gorm:"not null" json:"content"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
