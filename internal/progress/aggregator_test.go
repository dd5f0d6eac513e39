package progress_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/progress"
	"github.com/maturamate/maturamate-api/internal/simulation"
	"github.com/maturamate/maturamate-api/internal/testutil"
	"github.com/maturamate/maturamate-api/internal/topic"
)

type env struct {
	db   *gorm.DB
	svc  progress.Service
	repo progress.Repository
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewTestDB(t)

	topicRepo := topic.NewRepository(db)
	topicSvc := topic.NewService(topicRepo)
	exerciseRepo := exercise.NewRepository(db)
	simulationRepo := simulation.NewRepository(db)
	repo := progress.NewRepository(db)

	return &env{
		db:   db,
		svc:  progress.NewService(repo, topicSvc, topicRepo, exerciseRepo, simulationRepo),
		repo: repo,
	}
}

func (e *env) seedTopic(t *testing.T, name string, position int) topic.Topic {
	t.Helper()
	tp := topic.Topic{ID: uuid.New(), Name: name, Position: testutil.Ptr(position)}
	if err := e.db.Create(&tp).Error; err != nil {
		t.Fatalf("seed del tema %q: %v", name, err)
	}
	return tp
}

func (e *env) seedSubtopic(t *testing.T, topicID uuid.UUID, name string, position int) topic.Subtopic {
	t.Helper()
	st := topic.Subtopic{ID: uuid.New(), TopicID: topicID, Name: name, Position: testutil.Ptr(position)}
	if err := e.db.Create(&st).Error; err != nil {
		t.Fatalf("seed del sottotema %q: %v", name, err)
	}
	return st
}

func (e *env) seedCard(t *testing.T, subtopicID uuid.UUID, exercises int) (exercise.ExerciseCard, []uuid.UUID) {
	t.Helper()
	card := exercise.ExerciseCard{
		ID:          uuid.New(),
		SubtopicID:  subtopicID,
		Description: "Scheda di prova",
		Difficulty:  exercise.DifficultyBasic,
	}
	if err := e.db.Create(&card).Error; err != nil {
		t.Fatalf("seed della scheda: %v", err)
	}

	ids := make([]uuid.UUID, 0, exercises)
	for i := 0; i < exercises; i++ {
		ex := exercise.Exercise{
			ID:       uuid.New(),
			CardID:   card.ID,
			Question: datatypes.JSON(`{"text":"2+2?"}`),
			Position: testutil.Ptr(i + 1),
		}
		if err := e.db.Create(&ex).Error; err != nil {
			t.Fatalf("seed dell'esercizio: %v", err)
		}
		ids = append(ids, ex.ID)
	}
	return card, ids
}

func (e *env) seedSimulation(t *testing.T) simulation.Simulation {
	t.Helper()
	card := simulation.SimulationCard{ID: uuid.New(), Year: 2025, Subject: "Matematica"}
	if err := e.db.Create(&card).Error; err != nil {
		t.Fatalf("seed della scheda simulazioni: %v", err)
	}
	sim := simulation.Simulation{ID: uuid.New(), CardID: card.ID, Title: "Sessione ordinaria", TimeMinutes: 360}
	if err := e.db.Create(&sim).Error; err != nil {
		t.Fatalf("seed della simulazione: %v", err)
	}
	return sim
}

func (e *env) attempt(t *testing.T, userID, exerciseID uuid.UUID, correct bool) {
	t.Helper()
	if _, err := e.svc.RecordExerciseAttempt(context.Background(), userID, exerciseID, correct); err != nil {
		t.Fatalf("registrazione del tentativo: %v", err)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		name        string
		done, total int
		want        int
	}{
		{"zero su zero", 0, 0, 0},
		{"totale negativo", 1, -1, 0},
		{"tre su quattro", 3, 4, 75},
		{"arrotondamento per eccesso", 1, 8, 13},
		{"due terzi", 2, 3, 67},
		{"completo", 5, 5, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := progress.Percent(tc.done, tc.total); got != tc.want {
				t.Errorf("Percent(%d, %d) = %d, atteso %d", tc.done, tc.total, got, tc.want)
			}
		})
	}
}

func TestComputeCardCompletion(t *testing.T) {
	e := newEnv(t)
	userID := uuid.New()

	tp := e.seedTopic(t, "Algebra", 1)
	st := e.seedSubtopic(t, tp.ID, "Equazioni", 1)
	_, exIDs := e.seedCard(t, st.ID, 4)

	// Tre esercizi risolti (uno dopo un errore), il quarto solo sbagliato.
	e.attempt(t, userID, exIDs[0], true)
	e.attempt(t, userID, exIDs[1], false)
	e.attempt(t, userID, exIDs[1], true)
	e.attempt(t, userID, exIDs[2], true)
	e.attempt(t, userID, exIDs[3], false)

	cards, err := e.svc.ComputeCardCompletion(context.Background(), userID, []uuid.UUID{st.ID})
	if err != nil {
		t.Fatalf("ComputeCardCompletion: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("attesa 1 scheda, trovate %d", len(cards))
	}

	cc := cards[0]
	if cc.Done != 3 || cc.Total != 4 {
		t.Errorf("attesi 3/4 esercizi risolti, trovati %d/%d", cc.Done, cc.Total)
	}
	if cc.Percent != 75 {
		t.Errorf("atteso 75%%, trovato %d%%", cc.Percent)
	}
	if cc.IsCompleted {
		t.Error("la scheda non deve risultare completata con un esercizio irrisolto")
	}

	// Risolvere l'ultimo esercizio completa la scheda. Ulteriori tentativi
	// sbagliati non la riaprono.
	e.attempt(t, userID, exIDs[3], true)
	e.attempt(t, userID, exIDs[0], false)

	cards, err = e.svc.ComputeCardCompletion(context.Background(), userID, []uuid.UUID{st.ID})
	if err != nil {
		t.Fatalf("ComputeCardCompletion dopo il completamento: %v", err)
	}
	if !cards[0].IsCompleted || cards[0].Percent != 100 {
		t.Errorf("attesa scheda completata al 100%%, trovato %d%% (completata=%v)", cards[0].Percent, cards[0].IsCompleted)
	}
}

func TestComputeCardCompletionAcrossCards(t *testing.T) {
	e := newEnv(t)
	userID := uuid.New()

	tp := e.seedTopic(t, "Algebra", 1)
	st1 := e.seedSubtopic(t, tp.ID, "Equazioni", 1)
	st2 := e.seedSubtopic(t, tp.ID, "Disequazioni", 2)
	_, firstIDs := e.seedCard(t, st1.ID, 2)
	_, secondIDs := e.seedCard(t, st2.ID, 2)

	// Tre esercizi su quattro risolti: una scheda completa, l'altra a metà.
	e.attempt(t, userID, firstIDs[0], true)
	e.attempt(t, userID, firstIDs[1], true)
	e.attempt(t, userID, secondIDs[0], true)

	cards, err := e.svc.ComputeCardCompletion(context.Background(), userID, []uuid.UUID{st1.ID, st2.ID})
	if err != nil {
		t.Fatalf("ComputeCardCompletion: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("attese 2 schede, trovate %d", len(cards))
	}

	done, total, completed := 0, 0, 0
	for _, cc := range cards {
		done += cc.Done
		total += cc.Total
		if cc.IsCompleted {
			completed++
		}
	}
	if done != 3 || total != 4 {
		t.Errorf("attesi 3/4 esercizi risolti in totale, trovati %d/%d", done, total)
	}
	if progress.Percent(done, total) != 75 {
		t.Errorf("atteso aggregato al 75%%, trovato %d%%", progress.Percent(done, total))
	}
	if completed != 1 {
		t.Errorf("attesa esattamente una scheda completata, trovate %d", completed)
	}
}

func TestComputeTopicCompletionResume(t *testing.T) {
	e := newEnv(t)
	userID := uuid.New()
	ctx := context.Background()

	first := e.seedTopic(t, "Algebra", 1)
	second := e.seedTopic(t, "Geometria", 2)

	res, err := e.svc.ComputeTopicCompletion(ctx, userID)
	if err != nil {
		t.Fatalf("ComputeTopicCompletion: %v", err)
	}
	if res.Resume == nil || res.Resume.ID != first.ID {
		t.Fatalf("atteso il primo tema come punto di ripresa")
	}

	if _, err := e.svc.MarkTopicComplete(ctx, userID, first.ID); err != nil {
		t.Fatalf("MarkTopicComplete: %v", err)
	}

	res, err = e.svc.ComputeTopicCompletion(ctx, userID)
	if err != nil {
		t.Fatalf("ComputeTopicCompletion dopo il completamento: %v", err)
	}
	if res.Resume == nil || res.Resume.ID != second.ID {
		t.Fatalf("atteso il secondo tema come punto di ripresa")
	}
	if !res.Items[0].Done || res.Items[1].Done {
		t.Errorf("stato di completamento inatteso: %+v", res.Items)
	}

	if _, err := e.svc.MarkTopicComplete(ctx, userID, second.ID); err != nil {
		t.Fatalf("MarkTopicComplete sul secondo tema: %v", err)
	}
	res, err = e.svc.ComputeTopicCompletion(ctx, userID)
	if err != nil {
		t.Fatalf("ComputeTopicCompletion con tutti i temi completi: %v", err)
	}
	if res.Resume != nil {
		t.Errorf("con tutti i temi completi il punto di ripresa deve essere nil")
	}
}

func TestComputeWeakestTopic(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	t.Run("senza tentativi usa il segnaposto", func(t *testing.T) {
		got, err := e.svc.ComputeWeakestTopic(ctx, uuid.New())
		if err != nil {
			t.Fatalf("ComputeWeakestTopic: %v", err)
		}
		if got.HasData {
			t.Error("HasData deve essere false senza tentativi")
		}
		if got.Name != progress.FallbackTopicName {
			t.Errorf("atteso il nome segnaposto %q, trovato %q", progress.FallbackTopicName, got.Name)
		}
		if got.TopicID != nil {
			t.Error("il segnaposto non deve riferirsi ad alcun tema")
		}
	})

	algebra := e.seedTopic(t, "Algebra", 1)
	geometria := e.seedTopic(t, "Geometria", 2)
	stAlg := e.seedSubtopic(t, algebra.ID, "Equazioni", 1)
	stGeo := e.seedSubtopic(t, geometria.ID, "Triangoli", 1)
	_, algIDs := e.seedCard(t, stAlg.ID, 2)
	_, geoIDs := e.seedCard(t, stGeo.ID, 2)

	t.Run("vince il tema con accuratezza minore", func(t *testing.T) {
		userID := uuid.New()
		// Algebra: 1 esercizio su 2 risolto. Geometria: 2 su 2.
		e.attempt(t, userID, algIDs[0], true)
		e.attempt(t, userID, algIDs[1], false)
		e.attempt(t, userID, geoIDs[0], true)
		e.attempt(t, userID, geoIDs[1], true)

		got, err := e.svc.ComputeWeakestTopic(ctx, userID)
		if err != nil {
			t.Fatalf("ComputeWeakestTopic: %v", err)
		}
		if got.TopicID == nil || *got.TopicID != algebra.ID {
			t.Fatalf("atteso il tema Algebra come più debole, trovato %+v", got)
		}
		if got.AccuracyPercent != 50 {
			t.Errorf("attesa accuratezza 50%%, trovata %d%%", got.AccuracyPercent)
		}
	})

	t.Run("a parità vince l'ordine di catalogo", func(t *testing.T) {
		userID := uuid.New()
		// Stessa accuratezza (50%) su entrambi i temi.
		e.attempt(t, userID, algIDs[0], true)
		e.attempt(t, userID, algIDs[1], false)
		e.attempt(t, userID, geoIDs[0], true)
		e.attempt(t, userID, geoIDs[1], false)

		got, err := e.svc.ComputeWeakestTopic(ctx, userID)
		if err != nil {
			t.Fatalf("ComputeWeakestTopic: %v", err)
		}
		if got.TopicID == nil || *got.TopicID != algebra.ID {
			t.Fatalf("a parità di accuratezza atteso il primo tema in catalogo, trovato %q", got.Name)
		}
	})

	t.Run("contano gli esercizi distinti, non i tentativi", func(t *testing.T) {
		userID := uuid.New()
		// Algebra: un esercizio sbagliato due volte e poi risolto deve
		// contare come risolto, quindi 2 su 2.
		e.attempt(t, userID, algIDs[0], false)
		e.attempt(t, userID, algIDs[0], false)
		e.attempt(t, userID, algIDs[0], true)
		e.attempt(t, userID, algIDs[1], true)
		// Geometria: 1 su 2.
		e.attempt(t, userID, geoIDs[0], true)
		e.attempt(t, userID, geoIDs[1], false)

		got, err := e.svc.ComputeWeakestTopic(ctx, userID)
		if err != nil {
			t.Fatalf("ComputeWeakestTopic: %v", err)
		}
		if got.TopicID == nil || *got.TopicID != geometria.ID {
			t.Fatalf("atteso il tema Geometria come più debole, trovato %q", got.Name)
		}
		if got.AccuracyPercent != 50 {
			t.Errorf("attesa accuratezza 50%%, trovata %d%%", got.AccuracyPercent)
		}
	})
}
