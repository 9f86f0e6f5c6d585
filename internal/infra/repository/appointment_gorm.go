package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/RosaneTech/crm-agenda/internal/domain/crm"
	"github.com/RosaneTech/crm-agenda/internal/httperr"
	"github.com/RosaneTech/crm-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create / Update
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	clientID uint,
	startsAt time.Time,
	durationMin int,
	status string,
	notes string,
) (uint, error) {

	if clientID == 0 {
		return 0, httperr.ErrValidation("client_id")
	}
	if startsAt.IsZero() {
		return 0, httperr.ErrValidation("starts_at")
	}

	if durationMin <= 0 {
		durationMin = 60
	}
	// Gravado literalmente: qualquer string é aceita.
	if status == "" {
		status = string(crm.InitialStatus())
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, httperr.ErrNotFound("client", clientID)
	}

	ap := models.Appointment{
		ClientID:    clientID,
		StartTime:   startsAt.Truncate(time.Minute),
		DurationMin: durationMin,
		Status:      status,
		Notes:       notes,
	}

	if err := r.db.WithContext(ctx).Create(&ap).Error; err != nil {
		return 0, err
	}

	return ap.ID, nil
}

// Update sobrescreve só as colunas mutáveis; client_id e created_at
// ficam fora do UPDATE. Último escritor vence.
func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id uint,
	startsAt time.Time,
	durationMin int,
	status string,
	notes string,
) error {

	if startsAt.IsZero() {
		return httperr.ErrValidation("starts_at")
	}
	if durationMin <= 0 {
		durationMin = 60
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return httperr.ErrNotFound("appointment", id)
	}

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"start_time":   startsAt.Truncate(time.Minute),
			"duration_min": durationMin,
			"status":       status,
			"notes":        notes,
		}).Error
}

// --------------------------------------------------
// Listagens (sempre com o cliente carregado)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListInRange(
	ctx context.Context,
	from *time.Time,
	to *time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Preload("Client")

	if from != nil {
		q = q.Where("start_time >= ?", startOfDay(*from))
	}
	if to != nil {
		// Inclusivo até 23:59 do dia "to".
		q = q.Where("start_time < ?", startOfDay(*to).AddDate(0, 0, 1))
	}

	var aps []models.Appointment
	if err := q.
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListUpcoming(
	ctx context.Context,
	windowDays int,
) ([]models.Appointment, error) {

	now := time.Now()
	end := now.Add(time.Duration(windowDays) * 24 * time.Hour)

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("start_time >= ? AND start_time < ?", now, end).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment", id)
		}
		return nil, err
	}

	return &ap, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Compile-time check
var _ crm.AppointmentRepository = (*AppointmentGormRepository)(nil)
