// Package main provides the entry point for the ccs-extract CLI application.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fjacquet/ccs-extract/cmd/batch"
	"fjacquet/ccs-extract/cmd/categorize"
	"fjacquet/ccs-extract/cmd/extract"
	"fjacquet/ccs-extract/cmd/root"
)

func init() {
	// Load environment variables silently first, then set the global log
	// level before any logger writes a line.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before the command machinery starts logging.
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
