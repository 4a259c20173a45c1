package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Secrets struct {
	Db  DbSecrets `json:"db"`
	Jwt string    `json:"jwt"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func LoadSecrets() (*Secrets, error) {
	// .env only exists locally; deployed envs set these vars directly
	_ = godotenv.Load()

	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("TRADEDESK_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("TRADEDESK_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}
