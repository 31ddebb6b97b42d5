package main

import (
	"errors"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/quizcourse/quizcourse/cmd/app"
)

func main() {
	if err := app.Start(); err != nil {
		if errors.Is(err, app.ErrCommandFailed) {
			os.Exit(1)
		}
		panic(err)
	}
}
