package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const DEFAULT_LISTEN_ADDR string = ":8000"
const DEFAULT_DATABASE_NAME string = "event-service"

// LoadEnv pulls a .env file into the process environment when one exists.
// Deployments usually set real env variables instead, so a missing file is fine.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func GetListenAddr() string {
	addr, err := GetSecret("LISTEN_ADDR")
	if err != nil {
		return DEFAULT_LISTEN_ADDR
	}
	return addr
}

func GetDatabaseName() string {
	name, err := GetSecret("MONGODB_DATABASE")
	if err != nil {
		return DEFAULT_DATABASE_NAME
	}
	return name
}
