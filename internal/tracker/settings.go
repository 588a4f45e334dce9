package tracker

import (
	"fmt"
	"strings"

	"github.com/Bharu-A/fittronix-cli/internal/store"
)

const (
	SettingWeightUnit = "weight_unit"
	SettingReportDir  = "report_dir"
)

func (t *Tracker) SetSetting(key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("setting key is required")
	}
	value = strings.TrimSpace(value)
	if key == SettingWeightUnit {
		switch strings.ToLower(value) {
		case "kg", "lb", "lbs":
			value = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid weight unit %q (use kg or lb)", value)
		}
	}
	t.settings[key] = value
	t.persist(store.KeySettings, t.settings)
	return nil
}

func (t *Tracker) Setting(key string) (string, bool) {
	value, ok := t.settings[strings.TrimSpace(strings.ToLower(key))]
	return value, ok
}

func (t *Tracker) Settings() map[string]string {
	out := make(map[string]string, len(t.settings))
	for k, v := range t.settings {
		out[k] = v
	}
	return out
}
