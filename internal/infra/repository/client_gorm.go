package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/RosaneTech/crm-agenda/internal/domain/crm"
	"github.com/RosaneTech/crm-agenda/internal/httperr"
	"github.com/RosaneTech/crm-agenda/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (uint, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, httperr.ErrValidation("name")
	}

	client := models.Client{
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now().Truncate(time.Minute),
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return 0, err
	}

	return client.ID, nil
}

// List filtra por substring sobre nome, telefone e e-mail. O LIKE
// rebaixado deixa a busca case-insensitive para ASCII; acentos e
// outros não-ASCII continuam sensíveis a caixa.
func (r *ClientGormRepository) List(
	ctx context.Context,
	filter string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx)

	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter != "" {
		like := "%" + filter + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *ClientGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("client", id)
		}
		return nil, err
	}

	return &client, nil
}

// Compile-time check
var _ crm.ClientRepository = (*ClientGormRepository)(nil)
