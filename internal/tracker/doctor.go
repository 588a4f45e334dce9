package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Bharu-A/fittronix-cli/internal/health"
	"github.com/Bharu-A/fittronix-cli/internal/model"
	"github.com/Bharu-A/fittronix-cli/internal/store"
)

type DoctorReport struct {
	MalformedRecords  []string `json:"malformed_records,omitempty"`
	ProfileIssues     int      `json:"profile_issues"`
	InvalidEntries    int      `json:"invalid_entries"`
	DuplicateEntryIDs int      `json:"duplicate_entry_ids"`
	WaterOutOfRange   bool     `json:"water_out_of_range"`
	FixedIssues       int      `json:"fixed_issues,omitempty"`
}

func (r *DoctorReport) Clean() bool {
	return len(r.MalformedRecords) == 0 && r.ProfileIssues == 0 &&
		r.InvalidEntries == 0 && r.DuplicateEntryIDs == 0 && !r.WaterOutOfRange
}

// RunDoctor checks the persisted records directly, bypassing the tracker,
// so it can diagnose state the tracker would refuse to load. With fix
// set it drops broken food entries, deduplicates ids keeping the first
// occurrence, and clamps water intake into range.
func RunDoctor(s store.Store, fix bool) (*DoctorReport, error) {
	report := &DoctorReport{}

	raw, ok, err := s.Load(store.KeyProfile)
	if err != nil {
		return nil, err
	}
	if ok {
		var p model.UserHealthProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			report.MalformedRecords = append(report.MalformedRecords, store.KeyProfile)
		} else if err := health.ValidateProfile(p); err != nil {
			if fieldErrs, isField := err.(health.FieldErrors); isField {
				report.ProfileIssues = len(fieldErrs)
			} else {
				report.ProfileIssues = 1
			}
		}
	}

	raw, ok, err = s.Load(store.KeyFoodLog)
	if err != nil {
		return nil, err
	}
	if ok {
		var entries []model.FoodEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			report.MalformedRecords = append(report.MalformedRecords, store.KeyFoodLog)
		} else {
			kept := make([]model.FoodEntry, 0, len(entries))
			seen := make(map[string]bool, len(entries))
			for _, e := range entries {
				if e.ID == "" {
					report.InvalidEntries++
					continue
				}
				if seen[e.ID] {
					report.DuplicateEntryIDs++
					continue
				}
				seen[e.ID] = true
				if !entryIsValid(e) {
					report.InvalidEntries++
					continue
				}
				kept = append(kept, e)
			}
			broken := report.DuplicateEntryIDs + report.InvalidEntries
			if fix && broken > 0 {
				encoded, err := json.Marshal(kept)
				if err != nil {
					return nil, fmt.Errorf("encode repaired food log: %w", err)
				}
				if err := s.Save(store.KeyFoodLog, encoded); err != nil {
					return nil, err
				}
				report.FixedIssues += broken
			}
		}
	}

	raw, ok, err = s.Load(store.KeyWater)
	if err != nil {
		return nil, err
	}
	if ok {
		var glasses int
		if err := json.Unmarshal(raw, &glasses); err != nil {
			report.MalformedRecords = append(report.MalformedRecords, store.KeyWater)
		} else if glasses < 0 || glasses > MaxWaterGlasses {
			report.WaterOutOfRange = true
			if fix {
				if glasses < 0 {
					glasses = 0
				}
				if glasses > MaxWaterGlasses {
					glasses = MaxWaterGlasses
				}
				encoded, err := json.Marshal(glasses)
				if err != nil {
					return nil, fmt.Errorf("encode repaired water intake: %w", err)
				}
				if err := s.Save(store.KeyWater, encoded); err != nil {
					return nil, err
				}
				report.FixedIssues++
			}
		}
	}
	return report, nil
}

func entryIsValid(e model.FoodEntry) bool {
	if _, err := validateFoodInput(FoodInput{
		Name:     e.Name,
		Calories: e.Calories,
		ProteinG: e.ProteinG,
		CarbsG:   e.CarbsG,
		FatG:     e.FatG,
		MealType: string(e.MealType),
	}); err != nil {
		return false
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return false
	}
	return true
}
