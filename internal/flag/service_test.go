package flag_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maturamate/maturamate-api/internal/apperror"
	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/flag"
	"github.com/maturamate/maturamate-api/internal/simulation"
	"github.com/maturamate/maturamate-api/internal/testutil"
	"github.com/maturamate/maturamate-api/internal/topic"
)

func newService(t *testing.T) (flag.Service, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := flag.NewService(flag.NewRepository(db), exercise.NewRepository(db), simulation.NewRepository(db))
	return svc, db
}

func seedCard(t *testing.T, db *gorm.DB, description string) exercise.ExerciseCard {
	t.Helper()
	tp := topic.Topic{ID: uuid.New(), Name: "Algebra"}
	st := topic.Subtopic{ID: uuid.New(), TopicID: tp.ID, Name: "Equazioni"}
	card := exercise.ExerciseCard{
		ID:          uuid.New(),
		SubtopicID:  st.ID,
		Description: description,
		Difficulty:  exercise.DifficultyBasic,
	}
	for _, record := range []interface{}{&tp, &st, &card} {
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("seed del catalogo: %v", err)
		}
	}
	return card
}

func seedSimulation(t *testing.T, db *gorm.DB, title string) simulation.Simulation {
	t.Helper()
	card := simulation.SimulationCard{ID: uuid.New(), Year: 2025, Subject: "Matematica"}
	sim := simulation.Simulation{ID: uuid.New(), CardID: card.ID, Title: title}
	for _, record := range []interface{}{&card, &sim} {
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("seed delle simulazioni: %v", err)
		}
	}
	return sim
}

func TestToggleAlternatesState(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	userID := uuid.New()
	card := seedCard(t, db, "Equazioni di primo grado")

	for i, want := range []bool{true, false, true} {
		res, err := svc.Toggle(ctx, userID, card.ID, flag.TargetKindExerciseCard)
		if err != nil {
			t.Fatalf("toggle n. %d: %v", i+1, err)
		}
		if res.Flagged != want {
			t.Errorf("toggle n. %d: atteso flagged=%v, trovato %v", i+1, want, res.Flagged)
		}
	}

	var count int64
	if err := db.Model(&flag.Flag{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("conteggio dei preferiti: %v", err)
	}
	if count != 1 {
		t.Errorf("atteso un solo preferito dopo tre toggle, trovati %d", count)
	}
}

func TestToggleConcurrentNeverDuplicatesRows(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	userID := uuid.New()
	card := seedCard(t, db, "Scheda contesa")

	results := make([]*flag.ToggleResult, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Toggle(ctx, userID, card.ID, flag.TargetKindExerciseCard)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("toggle concorrente n. %d: %v", i+1, err)
		}
	}

	var count int64
	if err := db.Model(&flag.Flag{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("conteggio dei preferiti: %v", err)
	}
	if count > 1 {
		t.Fatalf("mai più di una riga per (utente, bersaglio), trovate %d", count)
	}
	if !results[0].Flagged && !results[1].Flagged {
		t.Fatal("almeno un toggle da stato non marcato deve marcare")
	}

	// Se entrambi hanno osservato lo stato non marcato il conflitto è stato
	// assorbito e si converge sullo stato marcato; se il secondo ha visto la
	// riga del primo, i due toggle si compongono in sequenza (involuzione).
	if results[0].Flagged && results[1].Flagged {
		if count != 1 {
			t.Fatalf("due toggle in gara devono convergere su una riga, trovate %d", count)
		}
	} else if count != 0 {
		t.Fatalf("toggle in sequenza devono tornare allo stato non marcato, trovate %d righe", count)
	}
}

func TestToggleUnknownTarget(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Toggle(context.Background(), uuid.New(), uuid.New(), flag.TargetKindSimulation)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("atteso ErrNotFound per un bersaglio inesistente, trovato %v", err)
	}

	_, err = svc.Toggle(context.Background(), uuid.New(), uuid.New(), flag.TargetKind("PLAYLIST"))
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("atteso ErrNotFound per un tipo sconosciuto, trovato %v", err)
	}
}

func TestListByUserResolvesTitlesAndPaths(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	userID := uuid.New()

	card := seedCard(t, db, "Equazioni di primo grado")
	sim := seedSimulation(t, db, "Sessione ordinaria 2025")

	if _, err := svc.Toggle(ctx, userID, card.ID, flag.TargetKindExerciseCard); err != nil {
		t.Fatalf("toggle della scheda: %v", err)
	}
	if _, err := svc.Toggle(ctx, userID, sim.ID, flag.TargetKindSimulation); err != nil {
		t.Fatalf("toggle della simulazione: %v", err)
	}

	items, err := svc.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("attesi 2 preferiti, trovati %d", len(items))
	}

	byTarget := make(map[uuid.UUID]flag.FlaggedItem, len(items))
	for _, item := range items {
		byTarget[item.TargetID] = item
	}

	got, ok := byTarget[card.ID]
	if !ok || got.Title != card.Description {
		t.Errorf("scheda preferita non risolta: %+v", got)
	}
	if want := fmt.Sprintf("/exercise-cards/%s", card.ID); got.Path != want {
		t.Errorf("percorso della scheda: atteso %q, trovato %q", want, got.Path)
	}

	got, ok = byTarget[sim.ID]
	if !ok || got.Title != sim.Title {
		t.Errorf("simulazione preferita non risolta: %+v", got)
	}
}

func TestListByUserSkipsDeletedTargets(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	userID := uuid.New()

	card := seedCard(t, db, "Scheda destinata alla rimozione")
	if _, err := svc.Toggle(ctx, userID, card.ID, flag.TargetKindExerciseCard); err != nil {
		t.Fatalf("toggle della scheda: %v", err)
	}

	if err := db.Delete(&exercise.ExerciseCard{}, "id = ?", card.ID).Error; err != nil {
		t.Fatalf("rimozione della scheda: %v", err)
	}

	items, err := svc.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("un bersaglio rimosso non deve comparire tra i preferiti, trovati %d elementi", len(items))
	}
}
