package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/tipout-api-go/pkg/database"
	"github.com/arnavshah/tipout-api-go/pkg/engine"
	"github.com/arnavshah/tipout-api-go/pkg/models"
)

// fetchShifts loads the shifts of [start, end] (inclusive calendar days),
// joined with employees and the full role config history the engine needs
func (h *Handler) fetchShifts(start, end string) ([]models.Shift, error) {
	if start == "" || end == "" {
		return nil, errors.New("start and end query parameters are required (YYYY-MM-DD)")
	}
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, errors.New("invalid start date, expected YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, errors.New("invalid end date, expected YYYY-MM-DD")
	}

	var records []database.Shift
	err = h.DB.
		Preload("Employee").
		Preload("Role.Configs").
		Where("date >= ? AND date < ?", from, to.AddDate(0, 0, 1)).
		Order("date").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	shifts := make([]models.Shift, 0, len(records))
	for _, r := range records {
		shifts = append(shifts, r.Model())
	}
	return shifts, nil
}

// PayrollReport returns one summary row per (employee, role) for the range
func (h *Handler) PayrollReport(c *gin.Context) {
	shifts, err := h.fetchShifts(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries := engine.CalculateEmployeeRoleSummariesDaily(shifts)
	h.RecordUsage(c, len(shifts), 1)
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// SummaryReport returns the range-wide overall summary
func (h *Handler) SummaryReport(c *gin.Context) {
	shifts, err := h.fetchShifts(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary := engine.CalculateOverallSummary(shifts)
	h.RecordUsage(c, len(shifts), 1)
	c.JSON(http.StatusOK, summary)
}

// PayrollReportCSV exports the payroll report as CSV
func (h *Handler) PayrollReportCSV(c *gin.Context) {
	shifts, err := h.fetchShifts(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries := engine.CalculateEmployeeRoleSummariesDaily(shifts)
	h.RecordUsage(c, len(shifts), 1)

	var outCSV strings.Builder
	writer := csv.NewWriter(&outCSV)
	writer.Write([]string{
		"employee", "role", "hours", "cash_tips", "credit_tips",
		"bar_tipout", "host_tipout", "sa_tipout", "payroll_tips",
		"base_pay_rate", "payroll_total",
	})

	for _, s := range summaries {
		writer.Write([]string{
			s.EmployeeName,
			s.RoleName,
			fmt.Sprintf("%.2f", s.TotalHours),
			fmt.Sprintf("%.2f", s.TotalCashTips),
			fmt.Sprintf("%.2f", s.TotalCreditTips),
			fmt.Sprintf("%.2f", s.TotalBarTipout),
			fmt.Sprintf("%.2f", s.TotalHostTipout),
			fmt.Sprintf("%.2f", s.TotalSATipout),
			fmt.Sprintf("%.2f", s.TotalPayrollTips),
			fmt.Sprintf("%.2f", s.BasePayRate),
			fmt.Sprintf("%.2f", s.PayrollTotal),
		})
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{"csv": outCSV.String()})
}

// PreviewReport runs the engine on a caller-supplied shift payload without
// touching storage. The payload must carry shifts already joined with their
// employee and full role config history.
func (h *Handler) PreviewReport(c *gin.Context) {
	var input models.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries := engine.CalculateEmployeeRoleSummariesDaily(input.Shifts)
	summary := engine.CalculateOverallSummary(input.Shifts)
	h.RecordUsage(c, len(input.Shifts), 1)

	c.JSON(http.StatusOK, gin.H{
		"summaries": summaries,
		"summary":   summary,
	})
}
