package engine

import (
	"math"
	"sort"

	"github.com/arnavshah/tipout-api-go/pkg/models"
)

// CalculateEmployeeRoleSummariesDaily settles every shift day by day and
// aggregates the results into one row per (employee, role) pair across the
// whole range. Days are processed in ascending date order and shifts in
// input order within a day; the base pay rate on a row is whatever the
// last-processed shift for that pair resolved to. Money fields are rounded
// to two decimals in the final pass only.
func CalculateEmployeeRoleSummariesDaily(shifts []models.Shift) []models.EmployeeRoleSummary {
	type rowKey struct {
		employeeID string
		roleName   string
	}

	rows := make(map[rowKey]*models.EmployeeRoleSummary)
	var order []rowKey

	for _, dayShifts := range partitionByDay(shifts) {
		d := buildDay(dayShifts)
		for _, shift := range dayShifts {
			st := d.settleShift(shift)

			key := rowKey{shift.Employee.ID, shift.Role.Name}
			row, ok := rows[key]
			if !ok {
				row = &models.EmployeeRoleSummary{
					EmployeeID:   shift.Employee.ID,
					EmployeeName: shift.Employee.Name,
					RoleName:     shift.Role.Name,
				}
				rows[key] = row
				order = append(order, key)
			}

			row.TotalHours += shift.Hours
			row.TotalCashTips += st.CashTips
			row.TotalCreditTips += st.CreditTips
			row.TotalGrossCreditTips += shift.CreditTips
			row.TotalBarTipout += st.NetBar
			row.TotalHostTipout += st.NetHost
			row.TotalSATipout += st.NetSA
			row.TotalPayrollTips += st.PayrollTips
			row.TotalLiquorSales += shift.LiquorSales
			row.BasePayRate = ResolveBasePayRate(shift.Role, shift.Date)
		}
	}

	out := make([]models.EmployeeRoleSummary, 0, len(order))
	for _, key := range order {
		row := rows[key]
		if row.TotalHours > 0 {
			row.CashTipsPerHour = row.TotalCashTips / row.TotalHours
			row.CreditTipsPerHour = row.TotalPayrollTips / row.TotalHours
			row.TotalTipsPerHour = (row.TotalCashTips + row.TotalPayrollTips) / row.TotalHours
		}
		row.PayrollTotal = row.BasePayRate*row.TotalHours + row.TotalPayrollTips

		row.TotalCashTips = round2(row.TotalCashTips)
		row.TotalCreditTips = round2(row.TotalCreditTips)
		row.TotalGrossCreditTips = round2(row.TotalGrossCreditTips)
		row.TotalBarTipout = round2(row.TotalBarTipout)
		row.TotalHostTipout = round2(row.TotalHostTipout)
		row.TotalSATipout = round2(row.TotalSATipout)
		row.TotalPayrollTips = round2(row.TotalPayrollTips)
		row.TotalLiquorSales = round2(row.TotalLiquorSales)
		row.CashTipsPerHour = round2(row.CashTipsPerHour)
		row.CreditTipsPerHour = round2(row.CreditTipsPerHour)
		row.TotalTipsPerHour = round2(row.TotalTipsPerHour)
		row.PayrollTotal = round2(row.PayrollTotal)

		out = append(out, *row)
	}
	return out
}

// CalculateOverallSummary produces the range-wide rollup: raw totals, the
// amounts paid into each tipout pool per day (same presence flags as the
// daily run, but no pooling or distribution), and legacy per-hour averages
// for the "bar" class (receives bar tipout) and "server" class (pays bar,
// receives nothing).
func CalculateOverallSummary(shifts []models.Shift) models.ReportSummary {
	var sum models.ReportSummary

	var barHours, barPayrollTips float64
	var serverHours, serverPayrollTips float64

	for _, dayShifts := range partitionByDay(shifts) {
		hasHost, hasSA, hasBar := dayPresence(dayShifts)
		for _, shift := range dayShifts {
			sum.TotalShifts++
			sum.TotalHours += shift.Hours
			sum.TotalCashTips += shift.CashTips
			sum.TotalCreditTips += shift.CreditTips
			sum.TotalLiquorSales += shift.LiquorSales

			t := CalculateTipouts(shift, hasHost, hasSA, hasBar)
			if RolePaysTipoutType(shift, models.TipoutBar) {
				sum.TotalBarTipoutPaid += t.Bar
			}
			if RolePaysTipoutType(shift, models.TipoutHost) {
				sum.TotalHostTipoutPaid += t.Host
			}
			if RolePaysTipoutType(shift, models.TipoutSA) {
				sum.TotalSATipoutPaid += t.SA
			}

			receivesAny := RoleReceivesTipoutType(shift, models.TipoutBar) ||
				RoleReceivesTipoutType(shift, models.TipoutHost) ||
				RoleReceivesTipoutType(shift, models.TipoutSA)

			payrollTips := shift.CreditTips - t.Bar - t.Host - t.SA

			if RoleReceivesTipoutType(shift, models.TipoutBar) {
				barHours += shift.Hours
				barPayrollTips += payrollTips
			} else if RolePaysTipoutType(shift, models.TipoutBar) && !receivesAny {
				serverHours += shift.Hours
				serverPayrollTips += payrollTips
			}
		}
	}

	if barHours > 0 {
		sum.BarTipsPerHour = barPayrollTips / barHours
	}
	if serverHours > 0 {
		sum.ServerTipsPerHour = serverPayrollTips / serverHours
	}

	sum.TotalHours = round2(sum.TotalHours)
	sum.TotalCashTips = round2(sum.TotalCashTips)
	sum.TotalCreditTips = round2(sum.TotalCreditTips)
	sum.TotalLiquorSales = round2(sum.TotalLiquorSales)
	sum.TotalBarTipoutPaid = round2(sum.TotalBarTipoutPaid)
	sum.TotalHostTipoutPaid = round2(sum.TotalHostTipoutPaid)
	sum.TotalSATipoutPaid = round2(sum.TotalSATipoutPaid)
	sum.BarTipsPerHour = round2(sum.BarTipsPerHour)
	sum.ServerTipsPerHour = round2(sum.ServerTipsPerHour)
	return sum
}

// partitionByDay splits shifts into per-calendar-day groups, ordered by
// ascending date. Shifts keep their input order within a day; days never
// interact.
func partitionByDay(shifts []models.Shift) [][]models.Shift {
	byDay := make(map[string][]models.Shift)
	for _, s := range shifts {
		key := dateOnly(s.Date).Format("2006-01-02")
		byDay[key] = append(byDay[key], s)
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][]models.Shift, 0, len(keys))
	for _, k := range keys {
		out = append(out, byDay[k])
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
