package progress_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/maturamate/maturamate-api/internal/apperror"
)

func TestMarkTopicCompleteIsIdempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	userID := uuid.New()
	tp := e.seedTopic(t, "Algebra", 1)

	first, err := e.svc.MarkTopicComplete(ctx, userID, tp.ID)
	if err != nil {
		t.Fatalf("primo MarkTopicComplete: %v", err)
	}
	if first.AlreadyComplete {
		t.Error("il primo completamento non deve risultare già presente")
	}

	second, err := e.svc.MarkTopicComplete(ctx, userID, tp.ID)
	if err != nil {
		t.Fatalf("secondo MarkTopicComplete: %v", err)
	}
	if !second.AlreadyComplete {
		t.Error("il secondo completamento deve risultare già presente")
	}

	completions, err := e.repo.FindTopicCompletions(userID)
	if err != nil {
		t.Fatalf("FindTopicCompletions: %v", err)
	}
	if len(completions) != 1 {
		t.Errorf("attesa una sola riga di completamento, trovate %d", len(completions))
	}
}

func TestMarkTopicCompleteUnknownTopic(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.MarkTopicComplete(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("atteso ErrNotFound per un tema inesistente, trovato %v", err)
	}
}

func TestRecordExerciseAttemptNumbering(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	tp := e.seedTopic(t, "Algebra", 1)
	st := e.seedSubtopic(t, tp.ID, "Equazioni", 1)
	_, exIDs := e.seedCard(t, st.ID, 1)

	first, err := e.svc.RecordExerciseAttempt(ctx, userID, exIDs[0], false)
	if err != nil {
		t.Fatalf("primo tentativo: %v", err)
	}
	second, err := e.svc.RecordExerciseAttempt(ctx, userID, exIDs[0], true)
	if err != nil {
		t.Fatalf("secondo tentativo: %v", err)
	}
	if first.Attempt != 1 || second.Attempt != 2 {
		t.Errorf("attesa numerazione 1, 2: trovata %d, %d", first.Attempt, second.Attempt)
	}

	// La numerazione è per utente: un altro utente riparte da 1.
	other, err := e.svc.RecordExerciseAttempt(ctx, uuid.New(), exIDs[0], true)
	if err != nil {
		t.Fatalf("tentativo di un altro utente: %v", err)
	}
	if other.Attempt != 1 {
		t.Errorf("atteso tentativo 1 per un altro utente, trovato %d", other.Attempt)
	}
}

func TestRecordExerciseAttemptUnknownExercise(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.RecordExerciseAttempt(context.Background(), uuid.New(), uuid.New(), true)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("atteso ErrNotFound per un esercizio inesistente, trovato %v", err)
	}
}

func TestSimulationAttemptLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	userID := uuid.New()
	sim := e.seedSimulation(t)

	first, err := e.svc.StartSimulationAttempt(ctx, userID, sim.ID)
	if err != nil {
		t.Fatalf("primo avvio: %v", err)
	}
	second, err := e.svc.StartSimulationAttempt(ctx, userID, sim.ID)
	if err != nil {
		t.Fatalf("secondo avvio: %v", err)
	}
	if first.Attempt != 1 || second.Attempt != 2 {
		t.Errorf("attesa numerazione 1, 2: trovata %d, %d", first.Attempt, second.Attempt)
	}
	if first.CompletedAt != nil || second.CompletedAt != nil {
		t.Error("i tentativi appena avviati non devono avere data di chiusura")
	}

	closed, err := e.svc.CompleteSimulationAttempt(ctx, userID, sim.ID)
	if err != nil {
		t.Fatalf("chiusura: %v", err)
	}
	if closed.Attempt != 2 {
		t.Errorf("la chiusura deve colpire l'ultimo tentativo aperto, trovato n. %d", closed.Attempt)
	}
	if closed.CompletedAt == nil {
		t.Error("il tentativo chiuso deve avere data di chiusura")
	}

	attempts, err := e.svc.ListSimulationAttempts(ctx, userID, sim.ID)
	if err != nil {
		t.Fatalf("ListSimulationAttempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attesi 2 tentativi, trovati %d", len(attempts))
	}
	if attempts[0].Attempt != 1 || attempts[1].Attempt != 2 {
		t.Errorf("elenco non ordinato per numero di tentativo: %+v", attempts)
	}

	count, err := e.svc.CountCompletedSimulations(ctx, userID)
	if err != nil {
		t.Fatalf("CountCompletedSimulations: %v", err)
	}
	if count != 1 {
		t.Errorf("attesa 1 simulazione conclusa, trovate %d", count)
	}
}

func TestCompleteSimulationAttemptWithoutOpenAttempt(t *testing.T) {
	e := newEnv(t)
	sim := e.seedSimulation(t)

	_, err := e.svc.CompleteSimulationAttempt(context.Background(), uuid.New(), sim.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("atteso ErrNotFound senza tentativi aperti, trovato %v", err)
	}
}

func TestStartSimulationAttemptUnknownSimulation(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.StartSimulationAttempt(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("atteso ErrNotFound per una simulazione inesistente, trovato %v", err)
	}
}
