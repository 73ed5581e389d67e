package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MedAliAdlouni/mcq-generator/internal/app"
	"github.com/MedAliAdlouni/mcq-generator/internal/cli"
)

func main() {
	_ = godotenv.Load()

	cfg := app.Config{
		APIURL: getenv("QUIZAI_API_URL", "http://localhost:5000"),

		LogLevel: getenv("QUIZAI_LOG_LEVEL", "info"),
		LogFile:  getenv("QUIZAI_LOG_FILE", "/tmp/quizai.log"),

		RequestTimeout: 10 * time.Second,
	}

	os.Exit(cli.Run(cfg, os.Args[1:], os.Stdout, os.Stderr))
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
