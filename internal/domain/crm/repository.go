package crm

import (
	"context"
	"time"

	"github.com/RosaneTech/crm-agenda/internal/models"
)

// ===============================
// Repositories
// ===============================

type ClientRepository interface {
	// Create valida nome obrigatório e grava o cliente.
	Create(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (uint, error)

	// List retorna por created_at DESC. O filtro é substring sobre
	// nome, telefone e e-mail (case-insensitive para ASCII).
	List(
		ctx context.Context,
		filter string,
	) ([]models.Client, error)

	Get(
		ctx context.Context,
		id uint,
	) (*models.Client, error)
}

type NoteRepository interface {
	Create(
		ctx context.Context,
		clientID uint,
		content string,
	) (uint, error)

	// ListForClient retorna da mais recente para a mais antiga.
	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Note, error)
}

type AppointmentRepository interface {
	Create(
		ctx context.Context,
		clientID uint,
		startsAt time.Time,
		durationMin int,
		status string,
		notes string,
	) (uint, error)

	// Update sobrescreve os campos mutáveis incondicionalmente
	// (último escritor vence). ClientID e CreatedAt nunca mudam.
	Update(
		ctx context.Context,
		id uint,
		startsAt time.Time,
		durationMin int,
		status string,
		notes string,
	) error

	// ListInRange usa limites de dia inclusivos: from às 00:00,
	// to às 23:59. Sempre com o cliente carregado, start_time ASC.
	ListInRange(
		ctx context.Context,
		from *time.Time,
		to *time.Time,
	) ([]models.Appointment, error)

	// ListUpcoming cobre [agora, agora+windowDays).
	ListUpcoming(
		ctx context.Context,
		windowDays int,
	) ([]models.Appointment, error)

	Get(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)
}
