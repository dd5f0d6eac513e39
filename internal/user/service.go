package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/config"
)

type Service interface {
	FindOrCreateFromGoogle(ctx context.Context, profile GoogleProfile, refreshToken string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) FindOrCreateFromGoogle(ctx context.Context, profile GoogleProfile, refreshToken string) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByGoogleID(profile.ID)
	if err != nil {
		log.WithError(err).Error("Errore nella ricerca dell'utente Google")
		return nil, err
	}

	encrypted := ""
	if refreshToken != "" {
		encrypted, err = config.Encrypt(refreshToken)
		if err != nil {
			log.WithError(err).Error("Errore nella cifratura del refresh token")
			return nil, err
		}
	}

	if u == nil {
		u = &User{
			ID:              uuid.New(),
			GoogleID:        profile.ID,
			Email:           profile.Email,
			Name:            profile.Name,
			Picture:         profile.Picture,
			Role:            RoleStudent,
			RefreshTokenEnc: encrypted,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Errore nella creazione dell'utente")
			return nil, err
		}
		log.Info("Nuovo utente registrato via Google ", u.ID.String())
		return u, nil
	}

	u.Email = profile.Email
	u.Name = profile.Name
	u.Picture = profile.Picture
	if encrypted != "" {
		u.RefreshTokenEnc = encrypted
	}
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Errore nell'aggiornamento del profilo utente")
		return nil, err
	}
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: utente %s", apperror.ErrNotFound, id)
	}
	return u, nil
}
