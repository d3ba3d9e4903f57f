package engine

import "github.com/arnavshah/tipout-api-go/pkg/models"

// pooledTips is one pool member's per-hour share of the pool's netted tips
type pooledTips struct {
	CashTips   float64
	CreditTips float64
}

// day holds everything computed once per calendar day before shifts are
// settled: presence flags, pooled tip shares, the per-type paid-in totals,
// and receiving-group hours.
type day struct {
	shifts  []models.Shift
	hasHost bool
	hasSA   bool
	hasBar  bool

	// pooled has an entry for every shift with a tip pool group
	pooled map[string]pooledTips

	paidIn     map[models.TipoutType]float64
	groupHours map[string]float64
}

// buildDay runs the pooling and distribution steps for one day's shifts
func buildDay(shifts []models.Shift) *day {
	d := &day{
		shifts:     shifts,
		pooled:     make(map[string]pooledTips),
		paidIn:     make(map[models.TipoutType]float64),
		groupHours: make(map[string]float64),
	}
	d.hasHost, d.hasSA, d.hasBar = dayPresence(shifts)
	d.poolTips()
	d.buildDistribution()
	return d
}

// poolTips combines the raw tips of shifts sharing a tip pool group, nets
// out the pool's host/SA obligations from its credit tips, and re-derives
// each member's share by hours. Bar tipout is not netted here: members pay
// it individually on their own liquor sales. Shifts without a pool group
// keep their original tips.
func (d *day) poolTips() {
	groups := make(map[string][]models.Shift)
	for _, s := range d.shifts {
		if g := ShiftTipPoolGroup(s); g != "" {
			groups[g] = append(groups[g], s)
		}
	}

	for _, members := range groups {
		var totalCash, totalCredit, totalHours float64
		var paidHost, paidSA float64
		for _, m := range members {
			totalCash += m.CashTips
			totalCredit += m.CreditTips
			totalHours += m.Hours
			t := CalculateTipouts(m, d.hasHost, d.hasSA, d.hasBar)
			paidHost += t.Host
			paidSA += t.SA
		}

		netCash := totalCash
		netCredit := totalCredit - paidHost - paidSA

		for _, m := range members {
			if totalHours > 0 {
				d.pooled[m.ID] = pooledTips{
					CashTips:   m.Hours * netCash / totalHours,
					CreditTips: m.Hours * netCredit / totalHours,
				}
			} else {
				d.pooled[m.ID] = pooledTips{}
			}
		}
	}
}

// buildDistribution sums what every shift pays into each tipout pool and
// the hours of each receiving distribution group, independent of tip pool
// membership.
func (d *day) buildDistribution() {
	types := []models.TipoutType{models.TipoutBar, models.TipoutHost, models.TipoutSA}
	for _, s := range d.shifts {
		t := CalculateTipouts(s, d.hasHost, d.hasSA, d.hasBar)
		if RolePaysTipoutType(s, models.TipoutBar) {
			d.paidIn[models.TipoutBar] += t.Bar
		}
		if RolePaysTipoutType(s, models.TipoutHost) {
			d.paidIn[models.TipoutHost] += t.Host
		}
		if RolePaysTipoutType(s, models.TipoutSA) {
			d.paidIn[models.TipoutSA] += t.SA
		}

		for _, tt := range types {
			if RoleReceivesTipoutType(s, tt) {
				if g := RoleDistributionGroup(s, tt); g != "" {
					d.groupHours[g] += s.Hours
				}
			}
		}
	}
}
