package util

import (
	"encoding/json"
	"fmt"
	"os"
)

type Secrets struct {
	ChatGPTApiKey   string `json:"gpt"`
	ReasonerCommand string `json:"reasonerCommand"`
	EdgarUserAgent  string `json:"edgarUserAgent"`
}

// LoadSecrets reads the secrets file selected by SECSCAN_ENV. The file is
// optional for subprocess-based reasoning; callers decide whether a missing
// file is fatal.
func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("SECSCAN_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("SECSCAN_ENV") == "test" {
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
