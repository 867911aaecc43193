package sheets

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/salonic/salon-scheduler/internal/config"
)

var requiredCredentialFields = []string{
	"type", "project_id", "private_key_id", "private_key", "client_email",
}

// LoadCredentials resolves the service account JSON from either a file
// path or an inline blob, validates the fields the Sheets client needs,
// and normalizes the private key. Keys pasted into env files routinely
// arrive with literal \n sequences instead of real line breaks.
func LoadCredentials(cfg *config.Config) ([]byte, error) {
	var raw []byte

	switch {
	case cfg.CredentialsFile != "":
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read credentials file: %w", err)
		}
		raw = b
	case cfg.CredentialsJSON != "":
		raw = []byte(strings.TrimSpace(cfg.CredentialsJSON))
	default:
		return nil, fmt.Errorf("no service account configured: set GOOGLE_SA_FILE or GCP_SA_JSON")
	}

	var info map[string]any
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("service account is not valid JSON: %w", err)
	}

	var missing []string
	for _, field := range requiredCredentialFields {
		if s, _ := info[field].(string); s == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("service account JSON is missing fields: %s", strings.Join(missing, ", "))
	}

	pk := info["private_key"].(string)
	if strings.Contains(pk, `\n`) && strings.Contains(pk, "BEGIN PRIVATE KEY") {
		pk = strings.ReplaceAll(pk, `\n`, "\n")
	}
	info["private_key"] = strings.TrimSpace(pk)

	normalized, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("unable to re-encode credentials: %w", err)
	}
	return normalized, nil
}
