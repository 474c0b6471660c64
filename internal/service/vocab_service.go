// internal/service/vocab_service.go
package service

import (
	"context"
	"errors"

	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VocabService interface {
	CreateVocab(ctx context.Context, req *model.PostVocabRequest) (*model.Vocab, error)
	GetVocab(ctx context.Context, vocabID uuid.UUID) (*model.Vocab, error)
	ListVocabs(ctx context.Context, query model.VocabListQuery) ([]*model.Vocab, error)
	UpdateVocab(ctx context.Context, vocabID uuid.UUID, req *model.PatchVocabRequest) (*model.Vocab, error)
	DeleteVocab(ctx context.Context, vocabID uuid.UUID) error
	GetTagCounts(ctx context.Context) ([]*model.TagCount, error)
}

type vocabService struct {
	db        *gorm.DB
	vocabRepo repository.VocabRepository
}

func NewVocabService(db *gorm.DB, vocabRepo repository.VocabRepository) VocabService {
	return &vocabService{db: db, vocabRepo: vocabRepo}
}

func (s *vocabService) CreateVocab(ctx context.Context, req *model.PostVocabRequest) (*model.Vocab, error) {
	logger := middleware.GetLogger(ctx)

	vocab := &model.Vocab{
		VocabID:   uuid.New(),
		Zh:        req.Zh,
		Pinyin:    req.Pinyin,
		Vi:        req.Vi,
		AudioURL:  req.AudioURL,
		SourceTag: req.SourceTag,
	}
	if err := s.vocabRepo.Create(ctx, s.db, vocab); err != nil {
		logger.Error("Error creating vocab", "error", err)
		return nil, model.ErrInternalServer
	}
	return vocab, nil
}

func (s *vocabService) GetVocab(ctx context.Context, vocabID uuid.UUID) (*model.Vocab, error) {
	return s.vocabRepo.FindByID(ctx, s.db, vocabID)
}

func (s *vocabService) ListVocabs(ctx context.Context, query model.VocabListQuery) ([]*model.Vocab, error) {
	logger := middleware.GetLogger(ctx)

	vocabs, err := s.vocabRepo.FindAll(ctx, s.db, query)
	if err != nil {
		logger.Error("Error listing vocabs", "error", err)
		return nil, model.ErrInternalServer
	}
	return vocabs, nil
}

func (s *vocabService) UpdateVocab(ctx context.Context, vocabID uuid.UUID, req *model.PatchVocabRequest) (*model.Vocab, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.Vocab
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.vocabRepo.FindByID(ctx, tx, vocabID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Zh != nil {
			updates["zh"] = *req.Zh
		}
		if req.Pinyin != nil {
			updates["pinyin"] = *req.Pinyin
		}
		if req.Vi != nil {
			updates["vi"] = *req.Vi
		}
		if req.AudioURL != nil {
			updates["audio_url"] = *req.AudioURL
		}
		if req.SourceTag != nil {
			updates["source_tag"] = *req.SourceTag
		}

		if len(updates) > 0 {
			if err := s.vocabRepo.Update(ctx, tx, vocabID, updates); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.vocabRepo.FindByID(ctx, tx, vocabID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Error updating vocab", "error", err, "vocab_id", vocabID.String())
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func (s *vocabService) DeleteVocab(ctx context.Context, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.vocabRepo.Delete(ctx, s.db, vocabID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting vocab", "error", err, "vocab_id", vocabID.String())
		return model.ErrInternalServer
	}
	return nil
}

func (s *vocabService) GetTagCounts(ctx context.Context) ([]*model.TagCount, error) {
	logger := middleware.GetLogger(ctx)

	counts, err := s.vocabRepo.TagCounts(ctx, s.db)
	if err != nil {
		logger.Error("Error counting vocab tags", "error", err)
		return nil, model.ErrInternalServer
	}
	return counts, nil
}
