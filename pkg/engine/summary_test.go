package engine

import (
	"testing"
	"time"

	"github.com/arnavshah/tipout-api-go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pooledServerRole(effectiveFrom time.Time) models.Role {
	return models.Role{
		Name: "Server",
		Configs: []models.RoleConfig{
			{ID: "srv-bar", TipoutType: models.TipoutBar, PercentageRate: 10, EffectiveFrom: effectiveFrom, BasePayRate: 5},
			{ID: "srv-host", TipoutType: models.TipoutHost, PercentageRate: 7, TipPoolGroup: "server_pool", EffectiveFrom: effectiveFrom, BasePayRate: 5},
		},
	}
}

func bartenderRole(effectiveFrom time.Time) models.Role {
	return models.Role{
		Name: "Bartender",
		Configs: []models.RoleConfig{
			{
				ID:                "bt-bar",
				TipoutType:        models.TipoutBar,
				PaysTipout:        boolPtr(false),
				ReceivesTipout:    boolPtr(true),
				DistributionGroup: "bar_staff",
				EffectiveFrom:     effectiveFrom,
				BasePayRate:       10,
			},
		},
	}
}

func findRow(t *testing.T, rows []models.EmployeeRoleSummary, employeeID, roleName string) models.EmployeeRoleSummary {
	t.Helper()
	for _, r := range rows {
		if r.EmployeeID == employeeID && r.RoleName == roleName {
			return r
		}
	}
	t.Fatalf("no summary row for employee %s role %s", employeeID, roleName)
	return models.EmployeeRoleSummary{}
}

func TestSummaries_EmptyInput(t *testing.T) {
	assert.Empty(t, CalculateEmployeeRoleSummariesDaily(nil))
	assert.Empty(t, CalculateEmployeeRoleSummariesDaily([]models.Shift{}))

	sum := CalculateOverallSummary(nil)
	assert.Equal(t, models.ReportSummary{}, sum)
}

func TestSummaries_NonPooledBarTipout(t *testing.T) {
	from := date(2024, 1, 1)
	server := models.Role{
		Name: "Server",
		Configs: []models.RoleConfig{
			{TipoutType: models.TipoutBar, PercentageRate: 10, EffectiveFrom: from, BasePayRate: 5},
		},
	}

	shifts := []models.Shift{
		{
			ID: "s1", Date: date(2024, 5, 10),
			Employee:    models.Employee{ID: "e1", Name: "Ana"},
			Role:        server,
			Hours:       8,
			CreditTips:  200,
			LiquorSales: 400,
		},
		{
			ID: "s2", Date: date(2024, 5, 10),
			Employee: models.Employee{ID: "e2", Name: "Bo"},
			Role:     bartenderRole(from),
			Hours:    6,
		},
	}

	rows := CalculateEmployeeRoleSummariesDaily(shifts)
	require.Len(t, rows, 2)

	serverRow := findRow(t, rows, "e1", "Server")
	assert.InDelta(t, -40, serverRow.TotalBarTipout, 1e-9)
	assert.InDelta(t, 160, serverRow.TotalPayrollTips, 1e-9)

	barRow := findRow(t, rows, "e2", "Bartender")
	assert.InDelta(t, 40, barRow.TotalBarTipout, 1e-9,
		"sole bar receiver collects the whole pool")
	assert.InDelta(t, 40, barRow.TotalPayrollTips, 1e-9)
}

func TestSummaries_PooledDay(t *testing.T) {
	from := date(2024, 1, 1)
	server := pooledServerRole(from)

	shifts := []models.Shift{
		{
			ID: "s1", Date: date(2024, 5, 10),
			Employee:    models.Employee{ID: "e1", Name: "Ana"},
			Role:        server,
			Hours:       8,
			CashTips:    60,
			CreditTips:  180,
			LiquorSales: 400,
		},
		{
			ID: "s2", Date: date(2024, 5, 10),
			Employee:    models.Employee{ID: "e2", Name: "Bo"},
			Role:        server,
			Hours:       7,
			CashTips:    40,
			CreditTips:  120,
			LiquorSales: 300,
		},
		{
			ID: "s3", Date: date(2024, 5, 10),
			Employee: models.Employee{ID: "e3", Name: "Cam"},
			Role:     bartenderRole(from),
			Hours:    5,
		},
	}

	rows := CalculateEmployeeRoleSummariesDaily(shifts)
	require.Len(t, rows, 3)

	// Pool: cash 100, credit 300, 15h. Host obligation 7% of 400 = 28,
	// netted from credit before redistribution. Bar stays individual.
	ana := findRow(t, rows, "e1", "Server")
	assert.InDelta(t, 53.33, ana.TotalCashTips, 1e-9)    // 8/15 of 100
	assert.InDelta(t, 145.07, ana.TotalCreditTips, 1e-9) // 8/15 of 272
	assert.InDelta(t, 180, ana.TotalGrossCreditTips, 1e-9)
	assert.InDelta(t, -40, ana.TotalBarTipout, 1e-9)
	assert.InDelta(t, -16.8, ana.TotalHostTipout, 1e-9)
	assert.InDelta(t, 105.07, ana.TotalPayrollTips, 1e-9) // pooled credit - own bar
	assert.InDelta(t, 5, ana.BasePayRate, 1e-9)
	assert.InDelta(t, 145.07, ana.PayrollTotal, 1e-9) // 5*8 + 105.0667

	bo := findRow(t, rows, "e2", "Server")
	assert.InDelta(t, 46.67, bo.TotalCashTips, 1e-9)
	assert.InDelta(t, 126.93, bo.TotalCreditTips, 1e-9)
	assert.InDelta(t, -30, bo.TotalBarTipout, 1e-9)
	assert.InDelta(t, 96.93, bo.TotalPayrollTips, 1e-9)
	assert.InDelta(t, 131.93, bo.PayrollTotal, 1e-9) // 5*7 + 96.9333

	cam := findRow(t, rows, "e3", "Bartender")
	assert.InDelta(t, 70, cam.TotalBarTipout, 1e-9, "collects both servers' bar tipout")
	assert.InDelta(t, 70, cam.TotalPayrollTips, 1e-9)
	assert.InDelta(t, 120, cam.PayrollTotal, 1e-9) // 10*5 + 70
}

func TestSummaries_ZeroHourPoolZeroesTips(t *testing.T) {
	from := date(2024, 1, 1)
	server := pooledServerRole(from)

	shifts := []models.Shift{
		{
			ID: "s1", Date: date(2024, 5, 10),
			Employee:   models.Employee{ID: "e1", Name: "Ana"},
			Role:       server,
			Hours:      0,
			CashTips:   80,
			CreditTips: 240,
		},
		{
			ID: "s2", Date: date(2024, 5, 10),
			Employee:   models.Employee{ID: "e2", Name: "Bo"},
			Role:       server,
			Hours:      0,
			CashTips:   20,
			CreditTips: 60,
		},
	}

	rows := CalculateEmployeeRoleSummariesDaily(shifts)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Zero(t, r.TotalCashTips)
		assert.Zero(t, r.TotalCreditTips)
		assert.Zero(t, r.CashTipsPerHour)
	}
}

func TestSummaries_BasePayRateIsLastProcessedShifts(t *testing.T) {
	role := models.Role{
		Name: "Server",
		Configs: []models.RoleConfig{
			{TipoutType: models.TipoutGeneral, EffectiveFrom: date(2024, 1, 1), EffectiveTo: datePtr(2024, 6, 30), BasePayRate: 5},
			{TipoutType: models.TipoutGeneral, EffectiveFrom: date(2024, 7, 1), BasePayRate: 6},
		},
	}
	emp := models.Employee{ID: "e1", Name: "Ana"}

	// Input deliberately out of date order: days are processed ascending,
	// so the July shift resolves last and its rate sticks.
	shifts := []models.Shift{
		{ID: "s2", Date: date(2024, 7, 2), Employee: emp, Role: role, Hours: 4, CreditTips: 100},
		{ID: "s1", Date: date(2024, 6, 1), Employee: emp, Role: role, Hours: 6, CreditTips: 100},
	}

	rows := CalculateEmployeeRoleSummariesDaily(shifts)
	require.Len(t, rows, 1)
	assert.InDelta(t, 6, rows[0].BasePayRate, 1e-9)
	assert.InDelta(t, 10, rows[0].TotalHours, 1e-9)
	assert.InDelta(t, 6*10+200, rows[0].PayrollTotal, 1e-9)
}

func TestSummaries_DaysNeverInteract(t *testing.T) {
	from := date(2024, 1, 1)
	server := models.Role{
		Name: "Server",
		Configs: []models.RoleConfig{
			{TipoutType: models.TipoutBar, PercentageRate: 10, EffectiveFrom: from},
		},
	}

	// Bartender works Monday only; the server's liquor sales on Tuesday
	// have no bar receiver that day, so no bar tipout is charged.
	shifts := []models.Shift{
		{
			ID: "mon", Date: date(2024, 5, 6),
			Employee: models.Employee{ID: "e2", Name: "Bo"},
			Role:     bartenderRole(from),
			Hours:    6,
		},
		{
			ID: "tue", Date: date(2024, 5, 7),
			Employee:    models.Employee{ID: "e1", Name: "Ana"},
			Role:        server,
			Hours:       8,
			CreditTips:  200,
			LiquorSales: 400,
		},
	}

	rows := CalculateEmployeeRoleSummariesDaily(shifts)
	serverRow := findRow(t, rows, "e1", "Server")
	assert.Zero(t, serverRow.TotalBarTipout)
	assert.InDelta(t, 200, serverRow.TotalPayrollTips, 1e-9)

	barRow := findRow(t, rows, "e2", "Bartender")
	assert.Zero(t, barRow.TotalBarTipout)
}

func TestCalculateOverallSummary(t *testing.T) {
	from := date(2024, 1, 1)
	server := pooledServerRole(from)

	shifts := []models.Shift{
		{
			ID: "s1", Date: date(2024, 5, 10),
			Employee:    models.Employee{ID: "e1", Name: "Ana"},
			Role:        server,
			Hours:       8,
			CashTips:    60,
			CreditTips:  180,
			LiquorSales: 400,
		},
		{
			ID: "s2", Date: date(2024, 5, 10),
			Employee:    models.Employee{ID: "e2", Name: "Bo"},
			Role:        server,
			Hours:       7,
			CashTips:    40,
			CreditTips:  120,
			LiquorSales: 300,
		},
		{
			ID: "s3", Date: date(2024, 5, 10),
			Employee: models.Employee{ID: "e3", Name: "Cam"},
			Role:     bartenderRole(from),
			Hours:    5,
		},
	}

	sum := CalculateOverallSummary(shifts)
	assert.Equal(t, 3, sum.TotalShifts)
	assert.InDelta(t, 20, sum.TotalHours, 1e-9)
	assert.InDelta(t, 100, sum.TotalCashTips, 1e-9)
	assert.InDelta(t, 300, sum.TotalCreditTips, 1e-9)
	assert.InDelta(t, 700, sum.TotalLiquorSales, 1e-9)
	assert.InDelta(t, 70, sum.TotalBarTipoutPaid, 1e-9)
	assert.InDelta(t, 28, sum.TotalHostTipoutPaid, 1e-9,
		"host pool accrues even with nobody to receive it")
	assert.Zero(t, sum.TotalSATipoutPaid)

	// Server class: credit 300 - bar 70 - host 28 = 202 over 15h
	assert.InDelta(t, 13.47, sum.ServerTipsPerHour, 1e-9)
	assert.Zero(t, sum.BarTipsPerHour, "bartender booked no tips of their own")
}
