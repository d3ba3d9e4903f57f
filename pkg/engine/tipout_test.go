package engine

import (
	"testing"
	"time"

	"github.com/arnavshah/tipout-api-go/pkg/models"
	"github.com/stretchr/testify/assert"
)

func serverRole(effectiveFrom time.Time) models.Role {
	return models.Role{
		Name: "Server",
		Configs: []models.RoleConfig{
			{ID: "srv-bar", TipoutType: models.TipoutBar, PercentageRate: 10, EffectiveFrom: effectiveFrom},
			{ID: "srv-host", TipoutType: models.TipoutHost, PercentageRate: 7, EffectiveFrom: effectiveFrom},
			{ID: "srv-sa", TipoutType: models.TipoutSA, PercentageRate: 3, EffectiveFrom: effectiveFrom},
		},
	}
}

func TestCalculateTipouts_NoConfigs(t *testing.T) {
	shift := models.Shift{
		Role:        models.Role{Name: "Trainee"},
		CashTips:    50,
		CreditTips:  150,
		LiquorSales: 400,
	}

	got := CalculateTipouts(shift, true, true, true)
	assert.Equal(t, Tipouts{}, got)
}

func TestCalculateTipouts_AllPresent(t *testing.T) {
	shift := models.Shift{
		Role:        serverRole(date(2024, 1, 1)),
		CashTips:    100,
		CreditTips:  300,
		LiquorSales: 400,
	}

	got := CalculateTipouts(shift, true, true, true)
	assert.InDelta(t, 40, got.Bar, 1e-9)  // 10% of 400 liquor
	assert.InDelta(t, 28, got.Host, 1e-9) // 7% of 400 tips
	assert.InDelta(t, 12, got.SA, 1e-9)   // 3% of 400 tips
}

func TestCalculateTipouts_PresenceGates(t *testing.T) {
	shift := models.Shift{
		Role:        serverRole(date(2024, 1, 1)),
		CashTips:    100,
		CreditTips:  300,
		LiquorSales: 400,
	}

	got := CalculateTipouts(shift, false, false, false)
	assert.Zero(t, got.Bar, "bar tipout requires a bar receiver on shift")
	assert.Zero(t, got.SA, "SA tipout requires an SA receiver on shift")
	assert.InDelta(t, 28, got.Host, 1e-9,
		"host tipout is charged even with no host on shift")
}

func TestCalculateTipouts_HostChargedWithoutHostOnShift(t *testing.T) {
	// Locks in the bypassed host presence gate. The day has no
	// host-receiving shift at all, yet host tipout still accrues.
	shifts := []models.Shift{
		{
			ID:         "s1",
			Date:       date(2024, 5, 10),
			Employee:   models.Employee{ID: "e1", Name: "Ana"},
			Role:       serverRole(date(2024, 1, 1)),
			Hours:      8,
			CashTips:   100,
			CreditTips: 300,
		},
	}

	hasHost, hasSA, hasBar := dayPresence(shifts)
	assert.False(t, hasHost)

	got := CalculateTipouts(shifts[0], hasHost, hasSA, hasBar)
	assert.Greater(t, got.Host, 0.0)
}

func TestCalculateTipouts_ZeroRate(t *testing.T) {
	shift := models.Shift{
		Role: models.Role{
			Name: "Server",
			Configs: []models.RoleConfig{
				{TipoutType: models.TipoutBar, PercentageRate: 0, EffectiveFrom: date(2024, 1, 1)},
				{TipoutType: models.TipoutSA, PercentageRate: 0, EffectiveFrom: date(2024, 1, 1)},
			},
		},
		CashTips:    100,
		CreditTips:  300,
		LiquorSales: 500,
	}

	got := CalculateTipouts(shift, true, true, true)
	assert.Equal(t, Tipouts{}, got)
}

func TestCalculateTipouts_PaysTipoutFalseSkipsConfig(t *testing.T) {
	shift := models.Shift{
		Role: models.Role{
			Name: "Bartender",
			Configs: []models.RoleConfig{
				{
					TipoutType:     models.TipoutBar,
					PercentageRate: 10,
					PaysTipout:     boolPtr(false),
					ReceivesTipout: boolPtr(true),
					EffectiveFrom:  date(2024, 1, 1),
				},
			},
		},
		LiquorSales: 900,
	}

	got := CalculateTipouts(shift, true, true, true)
	assert.Zero(t, got.Bar)
}
