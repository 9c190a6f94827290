package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

// InitEnvironmentVariables loads the .env file matching goEnv from the
// working directory. Production deploys inject real environment variables
// instead of shipping a file, so a missing file is only fatal in development.
func InitEnvironmentVariables(goEnv string) error {
	envFile := DEV_ENV_FILENAME
	if goEnv == "production" {
		envFile = PROD_ENV_FILENAME
	}

	if err := godotenv.Load(envFile); err != nil {
		if goEnv == "production" {
			log.Infof("no %s file found, relying on process environment", envFile)
			return nil
		}

		return fmt.Errorf("InitEnvironmentVariables: failed to load %s file: %v", envFile, err)
	}

	return nil
}

func GetEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("GetEnv: %s environment variable not set", name)
	}

	return value, nil
}
