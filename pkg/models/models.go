package models

import "time"

// TipoutType identifies one category of mandatory tip transfer
type TipoutType string

const (
	TipoutBar     TipoutType = "bar"
	TipoutHost    TipoutType = "host"
	TipoutSA      TipoutType = "sa"
	TipoutGeneral TipoutType = "general"
)

// Employee represents a person who works shifts
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleConfig is one effective-dated version of a role's rule for one tipout type.
// PaysTipout defaults to true when absent; ReceivesTipout defaults to false.
// A nil EffectiveTo means the version is open-ended.
type RoleConfig struct {
	ID                string     `json:"id"`
	TipoutType        TipoutType `json:"tipout_type"`
	PercentageRate    float64    `json:"percentage_rate"`
	EffectiveFrom     time.Time  `json:"effective_from"`
	EffectiveTo       *time.Time `json:"effective_to,omitempty"`
	PaysTipout        *bool      `json:"pays_tipout,omitempty"`
	ReceivesTipout    *bool      `json:"receives_tipout,omitempty"`
	DistributionGroup string     `json:"distribution_group,omitempty"`
	TipPoolGroup      string     `json:"tip_pool_group,omitempty"`
	BasePayRate       float64    `json:"base_pay_rate"`
}

// Role is entirely defined by its config history; there is no single
// "current" rate except as resolved per-date
type Role struct {
	Name    string       `json:"name"`
	Configs []RoleConfig `json:"configs"`
}

// Shift is one worked shift, already joined with its employee and the
// full config history of its role
type Shift struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Employee    Employee  `json:"employee"`
	Role        Role      `json:"role"`
	Hours       float64   `json:"hours"`
	CashTips    float64   `json:"cash_tips"`
	CreditTips  float64   `json:"credit_tips"`
	LiquorSales float64   `json:"liquor_sales"`
}

// EmployeeRoleSummary is one payroll row per (employee, role) pair over the
// processed date range. Tipout totals are signed: positive = received,
// negative = paid.
type EmployeeRoleSummary struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	RoleName             string  `json:"role_name"`
	TotalHours           float64 `json:"total_hours"`
	TotalCashTips        float64 `json:"total_cash_tips"`
	TotalCreditTips      float64 `json:"total_credit_tips"`
	TotalGrossCreditTips float64 `json:"total_gross_credit_tips"`
	TotalBarTipout       float64 `json:"total_bar_tipout"`
	TotalHostTipout      float64 `json:"total_host_tipout"`
	TotalSATipout        float64 `json:"total_sa_tipout"`
	TotalPayrollTips     float64 `json:"total_payroll_tips"`
	TotalLiquorSales     float64 `json:"total_liquor_sales"`
	BasePayRate          float64 `json:"base_pay_rate"`
	CashTipsPerHour      float64 `json:"cash_tips_per_hour"`
	CreditTipsPerHour    float64 `json:"credit_tips_per_hour"`
	TotalTipsPerHour     float64 `json:"total_tips_per_hour"`
	PayrollTotal         float64 `json:"payroll_total"`
}

// ReportSummary is the range-wide rollup, not broken out per employee
type ReportSummary struct {
	TotalShifts         int     `json:"total_shifts"`
	TotalHours          float64 `json:"total_hours"`
	TotalCashTips       float64 `json:"total_cash_tips"`
	TotalCreditTips     float64 `json:"total_credit_tips"`
	TotalLiquorSales    float64 `json:"total_liquor_sales"`
	TotalBarTipoutPaid  float64 `json:"total_bar_tipout_paid"`
	TotalHostTipoutPaid float64 `json:"total_host_tipout_paid"`
	TotalSATipoutPaid   float64 `json:"total_sa_tipout_paid"`
	BarTipsPerHour      float64 `json:"bar_tips_per_hour"`
	ServerTipsPerHour   float64 `json:"server_tips_per_hour"`
}

// ReportInput is the payload for the report preview endpoint
type ReportInput struct {
	Shifts []Shift `json:"shifts"`
}
