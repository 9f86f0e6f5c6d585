package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/RosaneTech/crm-agenda/internal/domain/crm"
	"github.com/RosaneTech/crm-agenda/internal/httperr"
	"github.com/RosaneTech/crm-agenda/internal/models"
)

type NoteGormRepository struct {
	db *gorm.DB
}

func NewNoteGormRepository(db *gorm.DB) *NoteGormRepository {
	return &NoteGormRepository{db: db}
}

func (r *NoteGormRepository) Create(
	ctx context.Context,
	clientID uint,
	content string,
) (uint, error) {

	content = strings.TrimSpace(content)
	if content == "" {
		return 0, httperr.ErrValidation("content")
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

	note := models.Note{
		ClientID: clientID,
		Content:  content,
	}

	if err := r.db.WithContext(ctx).Create(&note).Error; err != nil {
		return 0, err
	}

	return note.ID, nil
}

func (r *NoteGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Note, error) {

	var notes []models.Note
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

// Compile-time check
var _ crm.NoteRepository = (*NoteGormRepository)(nil)
