package main

import (
	"go-dental-clinic/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewApplication()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %+v", err)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logrus.Fatalf("Application error: %+v", err)
	}
}
