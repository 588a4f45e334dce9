package tracker

import (
	"strings"

	"github.com/Bharu-A/fittronix-cli/internal/health"
	"github.com/Bharu-A/fittronix-cli/internal/model"
	"github.com/Bharu-A/fittronix-cli/internal/store"
)

// SetProfile validates and replaces the health profile. An invalid
// profile leaves the current one untouched.
func (t *Tracker) SetProfile(p model.UserHealthProfile) error {
	p.Gender = model.Gender(strings.TrimSpace(strings.ToLower(string(p.Gender))))
	p.ActivityLevel = model.ActivityLevel(strings.TrimSpace(strings.ToLower(string(p.ActivityLevel))))
	p.Goal = model.Goal(strings.TrimSpace(strings.ToLower(string(p.Goal))))
	p.DietaryPreference = strings.TrimSpace(p.DietaryPreference)
	p.Allergies = strings.TrimSpace(p.Allergies)
	p.HealthConditions = strings.TrimSpace(p.HealthConditions)

	if err := health.ValidateProfile(p); err != nil {
		return err
	}
	t.profile = &p
	t.persist(store.KeyProfile, t.profile)
	return nil
}

// Profile returns a copy of the stored profile, if any.
func (t *Tracker) Profile() (model.UserHealthProfile, bool) {
	if t.profile == nil {
		return model.UserHealthProfile{}, false
	}
	return *t.profile, true
}
