package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/neurodemon/neurodemon/internal/consent"
	"github.com/neurodemon/neurodemon/internal/settings"
	"github.com/neurodemon/neurodemon/internal/storage"
)

// LocalStore validates the durable local store file and the records kept
// inside it. The store recovers from all of these at startup, so everything
// short of an unreadable file is a warning, not an error.
func LocalStore(path string) Result {
	result := Result{}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddPending(storage.FileName + " not found")
			result.AddItem(StatusPending, storage.FileName, "not found, fresh profile")
			return result
		}
		result.AddError(fmt.Sprintf("Local store: %v", err))
		result.AddItem(StatusError, storage.FileName, err.Error())
		return result
	}

	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		result.AddWarning("Local store is unreadable and will start empty")
		result.AddItem(StatusWarning, storage.FileName, "unreadable, will start empty")
		return result
	}

	result.AddItem(StatusSuccess, storage.FileName, fmt.Sprintf("%d keys", len(data)))
	checkSettingsRecord(&result, data)
	checkConsentRecord(&result, data)
	return result
}

func checkSettingsRecord(result *Result, data map[string]string) {
	const name = "accessibility settings"

	raw, ok := data[settings.StorageKey]
	if !ok {
		result.AddItem(StatusPending, name, "not written yet, defaults apply")
		return
	}

	var record settings.AccessibilitySettings
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		result.AddWarning("Accessibility settings are unreadable, defaults will apply")
		result.AddItem(StatusWarning, name, "unreadable, defaults will apply")
		return
	}
	if err := record.Validate(); err != nil {
		result.AddWarning(fmt.Sprintf("Accessibility settings: %v", err))
		result.AddItem(StatusWarning, name, err.Error())
		return
	}

	result.AddItem(StatusSuccess, name, "theme "+string(record.Theme))
}

func checkConsentRecord(result *Result, data map[string]string) {
	const name = "consent record"

	flag, ok := data[consent.KeyAccepted]
	if !ok {
		result.AddItem(StatusPending, name, "no acceptance recorded")
		return
	}
	if flag != "true" {
		result.AddWarning(fmt.Sprintf("Consent flag is %q, the gate will show again", flag))
		result.AddItem(StatusWarning, name, fmt.Sprintf("flag is %q", flag))
		return
	}

	version := data[consent.KeyVersion]
	if version == "" {
		result.AddWarning("Consent record has no version, the gate will show again")
		result.AddItem(StatusWarning, name, "missing version")
		return
	}
	if raw, ok := data[consent.KeyAcceptedAt]; ok {
		if _, err := time.Parse(time.RFC3339, raw); err != nil {
			result.AddWarning("Consent timestamp is not RFC 3339")
			result.AddItem(StatusWarning, name, "bad timestamp")
			return
		}
	}

	result.AddItem(StatusSuccess, name, "version "+version)
}
