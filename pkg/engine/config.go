package engine

import (
	"sort"
	"time"

	"github.com/arnavshah/tipout-api-go/pkg/models"
)

// FindActiveConfig returns the config for the given tipout type whose
// effective interval contains date, or nil if none matches. Both interval
// ends are inclusive; a nil EffectiveTo means open-ended. Configs are taken
// in the order given: callers wanting latest-applicable semantics pass a
// most-recent-first slice.
func FindActiveConfig(configs []models.RoleConfig, tipoutType models.TipoutType, date time.Time) *models.RoleConfig {
	day := dateOnly(date)
	for i := range configs {
		c := &configs[i]
		if c.TipoutType != tipoutType {
			continue
		}
		if dateOnly(c.EffectiveFrom).After(day) {
			continue
		}
		if c.EffectiveTo != nil && day.After(dateOnly(*c.EffectiveTo)) {
			continue
		}
		return c
	}
	return nil
}

// ResolveBasePayRate returns the wage on the most recent config version
// (any tipout type) in effect on date, or 0 if the role has none.
func ResolveBasePayRate(role models.Role, date time.Time) float64 {
	configs := make([]models.RoleConfig, len(role.Configs))
	copy(configs, role.Configs)
	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].EffectiveFrom.After(configs[j].EffectiveFrom)
	})

	day := dateOnly(date)
	for i := range configs {
		c := &configs[i]
		if dateOnly(c.EffectiveFrom).After(day) {
			continue
		}
		if c.EffectiveTo != nil && day.After(dateOnly(*c.EffectiveTo)) {
			continue
		}
		return c.BasePayRate
	}
	return 0
}

// RolePaysTipoutType reports whether the shift's role pays the given tipout
// type. This scans the whole config history without date filtering:
// capability is structural, not time-scoped. PaysTipout defaults to true
// when absent.
func RolePaysTipoutType(shift models.Shift, tipoutType models.TipoutType) bool {
	for _, c := range shift.Role.Configs {
		if c.TipoutType == tipoutType && paysTipout(c) {
			return true
		}
	}
	return false
}

// RoleReceivesTipoutType reports whether the shift's role receives the given
// tipout type. ReceivesTipout defaults to false when absent, the opposite
// polarity of PaysTipout.
func RoleReceivesTipoutType(shift models.Shift, tipoutType models.TipoutType) bool {
	for _, c := range shift.Role.Configs {
		if c.TipoutType == tipoutType && receivesTipout(c) {
			return true
		}
	}
	return false
}

// RoleDistributionGroup returns the distribution group of the first config
// that receives the given tipout type, or "" when the role receives nothing
// of that type.
func RoleDistributionGroup(shift models.Shift, tipoutType models.TipoutType) string {
	for _, c := range shift.Role.Configs {
		if c.TipoutType == tipoutType && receivesTipout(c) {
			return c.DistributionGroup
		}
	}
	return ""
}

// ShiftTipPoolGroup returns the tip pool group of the first config carrying
// one, or "" when the shift's tips are not pooled.
func ShiftTipPoolGroup(shift models.Shift) string {
	for _, c := range shift.Role.Configs {
		if c.TipPoolGroup != "" {
			return c.TipPoolGroup
		}
	}
	return ""
}

func paysTipout(c models.RoleConfig) bool {
	return c.PaysTipout == nil || *c.PaysTipout
}

func receivesTipout(c models.RoleConfig) bool {
	return c.ReceivesTipout != nil && *c.ReceivesTipout
}

// dateOnly truncates a timestamp to its calendar day in UTC
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
