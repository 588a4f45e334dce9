package tracker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Bharu-A/fittronix-cli/internal/health"
	"github.com/Bharu-A/fittronix-cli/internal/model"
	"github.com/Bharu-A/fittronix-cli/internal/store"
)

// Archive mirrors the three persisted records for export/import. Field
// names match the record keys.
type Archive struct {
	Profile *model.UserHealthProfile `json:"userHealthData,omitempty"`
	FoodLog []model.FoodEntry        `json:"foodLog"`
	Water   int                      `json:"waterIntake"`
}

type ImportSummary struct {
	ProfileImported bool `json:"profile_imported"`
	ImportedEntries int  `json:"imported_entries"`
	SkippedEntries  int  `json:"skipped_entries"`
	WaterImported   bool `json:"water_imported"`
}

func (t *Tracker) Export(w io.Writer) error {
	archive := Archive{
		Profile: t.profile,
		FoodLog: t.Entries(),
		Water:   t.water,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(archive); err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}
	return nil
}

// Import loads an archive. With replace set, all three records are
// overwritten; otherwise entries with unseen ids are appended, the
// profile is taken only when none exists, and water is left alone.
// Entries failing validation are skipped and counted, never imported.
// The whole archive is validated before any state is touched, so a
// rejected archive leaves memory and store exactly as they were.
func (t *Tracker) Import(r io.Reader, replace bool) (ImportSummary, error) {
	var archive Archive
	dec := json.NewDecoder(r)
	if err := dec.Decode(&archive); err != nil {
		return ImportSummary{}, fmt.Errorf("decode archive: %w", err)
	}

	if archive.Profile != nil {
		if err := health.ValidateProfile(*archive.Profile); err != nil {
			return ImportSummary{}, fmt.Errorf("archive profile: %w", err)
		}
	}
	if replace && (archive.Water < 0 || archive.Water > MaxWaterGlasses) {
		return ImportSummary{}, fmt.Errorf("archive water intake must be between 0 and %d", MaxWaterGlasses)
	}

	var summary ImportSummary

	if archive.Profile != nil && (replace || t.profile == nil) {
		p := *archive.Profile
		t.profile = &p
		t.persist(store.KeyProfile, t.profile)
		summary.ProfileImported = true
	}

	if replace {
		t.foodLog = nil
	}
	seen := make(map[string]bool, len(t.foodLog))
	for _, e := range t.foodLog {
		seen[e.ID] = true
	}
	changed := false
	for _, e := range archive.FoodLog {
		if e.ID == "" || seen[e.ID] || !entryIsValid(e) {
			summary.SkippedEntries++
			continue
		}
		seen[e.ID] = true
		t.foodLog = append(t.foodLog, e)
		summary.ImportedEntries++
		changed = true
	}
	if changed || replace {
		t.persist(store.KeyFoodLog, t.foodLog)
	}

	if replace {
		t.water = archive.Water
		t.persist(store.KeyWater, t.water)
		summary.WaterImported = true
	}
	return summary, nil
}
