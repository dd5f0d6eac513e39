package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/maturamate/maturamate-api/internal/container"
	"github.com/maturamate/maturamate-api/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:       c.UserContainer.Handler,
		TopicHandler:      c.TopicContainer.Handler,
		ExerciseHandler:   c.ExerciseContainer.Handler,
		SimulationHandler: c.SimulationContainer.Handler,
		ProgressHandler:   c.ProgressContainer.Handler,
		FlagHandler:       c.FlagContainer.Handler,
		StatsHandler:      c.StatsContainer.Handler,
		AllowedOrigin:     os.Getenv("ALLOWED_ORIGIN"),
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logrus.Info("Server locale in ascolto su ", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("Server terminato")
	}
}
