package engine

import "github.com/arnavshah/tipout-api-go/pkg/models"

// Tipouts holds the amounts one shift pays out to each tipout pool
type Tipouts struct {
	Bar  float64 `json:"bar"`
	Host float64 `json:"host"`
	SA   float64 `json:"sa"`
}

// CalculateTipouts computes what one shift owes each pool from its original
// (pre-pooling) tips and sales. The presence flags say whether any shift on
// the same day receives that type.
//
// Bar is paid only when a bar receiver is present; SA only when an SA
// receiver is present. Host is charged unconditionally: the presence gate is
// deliberately bypassed so host tipout accrues even with no host on shift.
// Do not "fix" this to match bar/SA.
func CalculateTipouts(shift models.Shift, hasHost, hasSA, hasBar bool) Tipouts {
	var out Tipouts
	for _, c := range shift.Role.Configs {
		if !paysTipout(c) {
			continue
		}
		switch c.TipoutType {
		case models.TipoutBar:
			if hasBar {
				out.Bar += shift.LiquorSales * c.PercentageRate / 100
			}
		case models.TipoutHost:
			out.Host += (shift.CashTips + shift.CreditTips) * c.PercentageRate / 100
		case models.TipoutSA:
			if hasSA {
				out.SA += (shift.CashTips + shift.CreditTips) * c.PercentageRate / 100
			}
		}
	}
	return out
}

// dayPresence reports, for one day's shifts, whether any shift receives
// each tipout type
func dayPresence(shifts []models.Shift) (hasHost, hasSA, hasBar bool) {
	for _, s := range shifts {
		if !hasHost && RoleReceivesTipoutType(s, models.TipoutHost) {
			hasHost = true
		}
		if !hasSA && RoleReceivesTipoutType(s, models.TipoutSA) {
			hasSA = true
		}
		if !hasBar && RoleReceivesTipoutType(s, models.TipoutBar) {
			hasBar = true
		}
	}
	return
}
