package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/config"
	"github.com/maturamate/maturamate-api/internal/requestcache"
)

// Chiavi della cache di richiesta: una passata di aggregazione legge il
// catalogo più volte, la memoizzazione evita query identiche ripetute.
const (
	cacheKeyTopics = "catalog:topics"
	cacheKeyTree   = "catalog:tree"
)

type Service interface {
	ListTopics(ctx context.Context) ([]Topic, error)
	ListSubtopics(ctx context.Context, topicID uuid.UUID) ([]Subtopic, error)
	ListTopicsWithSubtopics(ctx context.Context) ([]Topic, error)
	GetSubtopic(ctx context.Context, id uuid.UUID) (*Subtopic, error)

	CreateTopic(ctx context.Context, dto CreateTopicDTO) (*Topic, error)
	UpdateTopic(ctx context.Context, id uuid.UUID, dto UpdateTopicDTO) (*Topic, error)
	DeleteTopic(ctx context.Context, id uuid.UUID) error
	CreateSubtopic(ctx context.Context, topicID uuid.UUID, dto CreateSubtopicDTO) (*Subtopic, error)
	UpdateSubtopic(ctx context.Context, id uuid.UUID, dto UpdateSubtopicDTO) (*Subtopic, error)
	DeleteSubtopic(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListTopics(ctx context.Context) ([]Topic, error) {
	return requestcache.GetOrLoadAs(requestcache.FromContext(ctx), cacheKeyTopics, func() ([]Topic, error) {
		return s.repo.FindAll()
	})
}

func (s *service) ListSubtopics(ctx context.Context, topicID uuid.UUID) ([]Subtopic, error) {
	t, err := s.repo.FindByID(topicID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: tema %s", apperror.ErrNotFound, topicID)
	}
	return s.repo.FindSubtopics(topicID)
}

func (s *service) ListTopicsWithSubtopics(ctx context.Context) ([]Topic, error) {
	return requestcache.GetOrLoadAs(requestcache.FromContext(ctx), cacheKeyTree, func() ([]Topic, error) {
		return s.repo.FindAllWithSubtopics()
	})
}

func (s *service) GetSubtopic(ctx context.Context, id uuid.UUID) (*Subtopic, error) {
	st, err := s.repo.FindSubtopicByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: sottotema %s", apperror.ErrNotFound, id)
	}
	return st, nil
}

func (s *service) CreateTopic(ctx context.Context, dto CreateTopicDTO) (*Topic, error) {
	log := config.WithContext(ctx)

	t := &Topic{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
		Position:    dto.Position,
	}
	if err := s.repo.CreateTopic(t); err != nil {
		log.WithError(err).Error("Errore nella creazione del tema")
		return nil, err
	}

	log.Info("Tema creato ", t.ID.String())
	return t, nil
}

func (s *service) UpdateTopic(ctx context.Context, id uuid.UUID, dto UpdateTopicDTO) (*Topic, error) {
	log := config.WithContext(ctx)

	t, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: tema %s", apperror.ErrNotFound, id)
	}

	if dto.Name != nil {
		t.Name = *dto.Name
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.Position != nil {
		t.Position = dto.Position
	}

	if err := s.repo.UpdateTopic(t); err != nil {
		log.WithError(err).Error("Errore nell'aggiornamento del tema")
		return nil, err
	}
	return t, nil
}

func (s *service) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.DeleteTopic(id); err != nil {
		log.WithError(err).Error("Errore nell'eliminazione del tema")
		return err
	}
	log.Info("Tema eliminato ", id.String())
	return nil
}

func (s *service) CreateSubtopic(ctx context.Context, topicID uuid.UUID, dto CreateSubtopicDTO) (*Subtopic, error) {
	log := config.WithContext(ctx)

	t, err := s.repo.FindByID(topicID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: tema %s", apperror.ErrNotFound, topicID)
	}

	st := &Subtopic{
		ID:       uuid.New(),
		TopicID:  topicID,
		Name:     dto.Name,
		Position: dto.Position,
	}
	if dto.Theory != "" {
		st.Theory = &TheoryContent{
			ID:         uuid.New(),
			SubtopicID: st.ID,
			Body:       dto.Theory,
		}
	}

	if err := s.repo.CreateSubtopic(st); err != nil {
		log.WithError(err).Error("Errore nella creazione del sottotema")
		return nil, err
	}

	log.Info("Sottotema creato ", st.ID.String())
	return st, nil
}

func (s *service) UpdateSubtopic(ctx context.Context, id uuid.UUID, dto UpdateSubtopicDTO) (*Subtopic, error) {
	log := config.WithContext(ctx)

	st, err := s.repo.FindSubtopicByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: sottotema %s", apperror.ErrNotFound, id)
	}

	if dto.Name != nil {
		st.Name = *dto.Name
	}
	if dto.Position != nil {
		st.Position = dto.Position
	}

	if err := s.repo.UpdateSubtopic(st); err != nil {
		log.WithError(err).Error("Errore nell'aggiornamento del sottotema")
		return nil, err
	}
	return st, nil
}

func (s *service) DeleteSubtopic(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.DeleteSubtopic(id); err != nil {
		log.WithError(err).Error("Errore nell'eliminazione del sottotema")
		return err
	}
	return nil
}
