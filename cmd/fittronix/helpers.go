package fittronix

import (
	"github.com/Bharu-A/fittronix-cli/internal/app"
	"github.com/Bharu-A/fittronix-cli/internal/store"
	"github.com/Bharu-A/fittronix-cli/internal/tracker"
)

func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	return app.DefaultStorePath()
}

func withStore(run func(*store.RecordStore) error) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Migrate(); err != nil {
		return err
	}
	return run(s)
}

func withTracker(run func(*tracker.Tracker) error) error {
	return withStore(func(s *store.RecordStore) error {
		t, err := tracker.New(s)
		if err != nil {
			return err
		}
		return run(t)
	})
}
