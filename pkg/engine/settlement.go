package engine

import "github.com/arnavshah/tipout-api-go/pkg/models"

// Settlement is one shift's net outcome for a day: displayed tips (pooled
// or original), tipouts paid and received, and the resulting payroll tips
type Settlement struct {
	Shift models.Shift

	Pooled     bool
	CashTips   float64
	CreditTips float64

	Paid     Tipouts
	Received Tipouts

	NetBar  float64
	NetHost float64
	NetSA   float64

	PayrollTips float64
}

// settleShift combines a shift's pooled or original tips with the day's
// tipout flows into one net figure.
//
// Pooled shifts already had host/SA netted out of the pool credit, so only
// the individually paid bar tipout is subtracted again; unpooled shifts
// subtract all three.
func (d *day) settleShift(shift models.Shift) Settlement {
	st := Settlement{
		Shift:      shift,
		CashTips:   shift.CashTips,
		CreditTips: shift.CreditTips,
		Paid:       CalculateTipouts(shift, d.hasHost, d.hasSA, d.hasBar),
	}

	if p, ok := d.pooled[shift.ID]; ok {
		st.Pooled = true
		st.CashTips = p.CashTips
		st.CreditTips = p.CreditTips
	}

	st.Received.Bar = d.receivedShare(shift, models.TipoutBar)
	st.Received.Host = d.receivedShare(shift, models.TipoutHost)
	st.Received.SA = d.receivedShare(shift, models.TipoutSA)

	st.NetBar = st.Received.Bar - st.Paid.Bar
	st.NetHost = st.Received.Host - st.Paid.Host
	st.NetSA = st.Received.SA - st.Paid.SA

	received := st.Received.Bar + st.Received.Host + st.Received.SA
	if st.Pooled {
		st.PayrollTips = st.CreditTips + received - st.Paid.Bar
	} else {
		st.PayrollTips = shift.CreditTips + received - st.Paid.Bar - st.Paid.Host - st.Paid.SA
	}
	return st
}

// receivedShare apportions the day's pool for one tipout type to a shift by
// its share of its distribution group's hours. Zero when the role does not
// receive the type, the group has no recorded hours, or nothing was paid in.
func (d *day) receivedShare(shift models.Shift, tipoutType models.TipoutType) float64 {
	if !RoleReceivesTipoutType(shift, tipoutType) {
		return 0
	}
	group := RoleDistributionGroup(shift, tipoutType)
	if group == "" {
		return 0
	}
	groupHours := d.groupHours[group]
	pool := d.paidIn[tipoutType]
	if groupHours <= 0 || pool <= 0 {
		return 0
	}
	return shift.Hours / groupHours * pool
}
