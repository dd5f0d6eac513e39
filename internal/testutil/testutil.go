// Package testutil apre database sqlite in memoria con lo schema completo
// dell'applicazione. Ogni chiamata restituisce un database isolato.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/flag"
	"github.com/maturamate/maturamate-api/internal/progress"
	"github.com/maturamate/maturamate-api/internal/simulation"
	"github.com/maturamate/maturamate-api/internal/topic"
	"github.com/maturamate/maturamate-api/internal/user"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// cache=shared con nome univoco: il pool di gorm può aprire più
	// connessioni e devono vedere tutte lo stesso database in memoria.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("apertura del database di test: %v", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&topic.Topic{},
		&topic.Subtopic{},
		&topic.TheoryContent{},
		&exercise.ExerciseCard{},
		&exercise.Exercise{},
		&simulation.SimulationCard{},
		&simulation.Simulation{},
		&progress.TopicCompletion{},
		&progress.SubtopicCompletion{},
		&progress.ExerciseAttempt{},
		&progress.SimulationAttempt{},
		&flag.Flag{},
	); err != nil {
		t.Fatalf("migrazione dello schema di test: %v", err)
	}

	return db
}

func Ptr[T any](v T) *T {
	return &v
}
