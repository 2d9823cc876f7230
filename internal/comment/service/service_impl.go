package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/comment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
}

func NewService(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("comment.service"),
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, comment domain.Comment) {
	if comment.ID == 0 {
		comment.ID = s.genID.Generate()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	err := s.db.WithContext(ctx).Exec(
		`INSERT INTO order_comments (id, reference_type, reference_value, text, is_visible_for_contact, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		comment.ID,
		comment.ReferenceType,
		comment.ReferenceValue,
		comment.Text,
		comment.IsVisibleForContact,
		comment.CreatedAt,
	).Error
	if err != nil {
		s.log.Warn("failed to write order comment",
			zap.String("reference_value", comment.ReferenceValue),
			zap.Error(err),
		)
	}
}
