package repository

import (
	"Limelight/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SocialAccountRepo interface {
	GetAccount(ctx context.Context, id string) (*model.SocialAccount, error)
	GetAccountsByUser(ctx context.Context, userID string) ([]*model.SocialAccount, error)
}

type socialAccountRepoImpl struct {
	db *gorm.DB
}

func NewSocialAccountRepository(db *gorm.DB) SocialAccountRepo {
	return &socialAccountRepoImpl{db: db}
}

func (r *socialAccountRepoImpl) GetAccount(ctx context.Context, id string) (*model.SocialAccount, error) {
	var account model.SocialAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *socialAccountRepoImpl) GetAccountsByUser(ctx context.Context, userID string) ([]*model.SocialAccount, error) {
	accounts := make([]*model.SocialAccount, 0)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}
