package container

import (
	"context"
	"log"
	"os"

	"github.com/maturamate/maturamate-api/internal/auth"
	"github.com/maturamate/maturamate-api/internal/config"
	"github.com/maturamate/maturamate-api/internal/exercise"
	"github.com/maturamate/maturamate-api/internal/flag"
	"github.com/maturamate/maturamate-api/internal/progress"
	"github.com/maturamate/maturamate-api/internal/simulation"
	"github.com/maturamate/maturamate-api/internal/stats"
	"github.com/maturamate/maturamate-api/internal/topic"
	"github.com/maturamate/maturamate-api/internal/user"
)

type Container struct {
	UserContainer       *user.UserContainer
	TopicContainer      *topic.TopicContainer
	ExerciseContainer   *exercise.ExerciseContainer
	SimulationContainer *simulation.SimulationContainer
	ProgressContainer   *progress.ProgressContainer
	FlagContainer       *flag.FlagContainer
	StatsContainer      *stats.StatsContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := config.DB.AutoMigrate(
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
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	userContainer := user.NewUserContainer(config.DB)
	topicContainer := topic.NewTopicContainer(config.DB)
	exerciseContainer := exercise.NewExerciseContainer(config.DB, topicContainer.Repo)
	simulationContainer := simulation.NewSimulationContainer(config.DB)

	progressContainer := progress.NewProgressContainer(
		config.DB,
		topicContainer.Service,
		topicContainer.Repo,
		exerciseContainer.Repo,
		simulationContainer.Repo,
	)
	flagContainer := flag.NewFlagContainer(config.DB, exerciseContainer.Repo, simulationContainer.Repo)
	statsContainer := stats.NewStatsContainer(
		topicContainer.Service,
		progressContainer.Service,
		flagContainer.Service,
	)

	return &Container{
		UserContainer:       userContainer,
		TopicContainer:      topicContainer,
		ExerciseContainer:   exerciseContainer,
		SimulationContainer: simulationContainer,
		ProgressContainer:   progressContainer,
		FlagContainer:       flagContainer,
		StatsContainer:      statsContainer,
	}
}
