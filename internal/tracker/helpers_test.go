package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/Bharu-A/fittronix-cli/internal/model"
)

// memStore is an in-memory Store so tracker tests run without SQLite.
type memStore struct {
	records  map[string][]byte
	failSave bool
	saves    int
}

func newMemStore() *memStore {
	return &memStore{records: map[string][]byte{}}
}

func (m *memStore) Load(key string) ([]byte, bool, error) {
	raw, ok := m.records[key]
	return raw, ok, nil
}

func (m *memStore) Save(key string, value []byte) error {
	if m.failSave {
		return fmt.Errorf("store offline")
	}
	m.saves++
	m.records[key] = append([]byte(nil), value...)
	return nil
}

func newTestTracker(t *testing.T) (*Tracker, *memStore) {
	t.Helper()
	m := newMemStore()
	tr, err := New(m)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	tr.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 15, 0, time.Local)
	}
	return tr, m
}

func validProfile() model.UserHealthProfile {
	return model.UserHealthProfile{
		Gender:        model.GenderMale,
		Age:           30,
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: model.ActivitySedentary,
		Goal:          model.GoalMaintain,
		MealsPerDay:   3,
	}
}

func mustAddFood(t *testing.T, tr *Tracker, in FoodInput) model.FoodEntry {
	t.Helper()
	entry, err := tr.AddFood(in)
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	return entry
}

func encodeArchive(t *testing.T, w io.Writer, archive Archive) {
	t.Helper()
	if err := json.NewEncoder(w).Encode(archive); err != nil {
		t.Fatalf("encode archive: %v", err)
	}
}
