package handlers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/tipout-api-go/pkg/database"
)

// ListEmployees returns all employees
func (h *Handler) ListEmployees(c *gin.Context) {
	var employees []database.Employee
	h.DB.Order("name").Find(&employees)
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// CreateEmployee creates an employee
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	employee := database.Employee{Name: req.Name}
	if err := h.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create employee"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee
func (h *Handler) DeleteEmployee(c *gin.Context) {
	if err := h.DB.Delete(&database.Employee{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// ListRoles returns all roles with their full config history
func (h *Handler) ListRoles(c *gin.Context) {
	var roles []database.Role
	h.DB.Preload("Configs").Order("name").Find(&roles)
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// CreateRole creates a role, optionally with initial config versions
func (h *Handler) CreateRole(c *gin.Context) {
	var role database.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if role.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := h.DB.Create(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create role"})
		return
	}
	c.JSON(http.StatusOK, role)
}

// AddRoleConfig appends a new effective-dated config version to a role.
// Closing the previous open-ended version is the caller's responsibility;
// the engine expects non-overlapping intervals per (role, tipout type).
func (h *Handler) AddRoleConfig(c *gin.Context) {
	roleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}

	var role database.Role
	if err := h.DB.First(&role, roleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	var config database.RoleConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.RoleID = role.ID

	if err := h.DB.Create(&config).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create config"})
		return
	}
	c.JSON(http.StatusOK, config)
}

// ListShifts returns shifts in a date range, joined with employee and role
func (h *Handler) ListShifts(c *gin.Context) {
	shifts, err := h.fetchShifts(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

// CreateShift records one worked shift
func (h *Handler) CreateShift(c *gin.Context) {
	var shift database.Shift
	if err := c.ShouldBindJSON(&shift); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if shift.EmployeeID == 0 || shift.RoleID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id and role_id are required"})
		return
	}

	if err := h.DB.Create(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create shift"})
		return
	}

	h.RecordUsage(c, 1, 0)
	c.JSON(http.StatusOK, shift)
}

// DeleteShift removes a shift
func (h *Handler) DeleteShift(c *gin.Context) {
	if err := h.DB.Delete(&database.Shift{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete shift"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}

// ImportShiftsCSV bulk-imports shifts from an uploaded CSV file with
// columns: date, employee_id, role_id, hours, cash_tips, credit_tips,
// liquor_sales
func (h *Handler) ImportShiftsCSV(c *gin.Context) {
	file, err := c.FormFile("shifts_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shifts_file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open shifts file"})
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read shifts header"})
		return
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[name] = i
	}

	var shifts []database.Shift
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		date, err := time.Parse("2006-01-02", record[cols["date"]])
		if err != nil {
			continue
		}
		employeeID, _ := strconv.ParseUint(record[cols["employee_id"]], 10, 32)
		roleID, _ := strconv.ParseUint(record[cols["role_id"]], 10, 32)
		hours, _ := strconv.ParseFloat(record[cols["hours"]], 64)
		cashTips, _ := strconv.ParseFloat(record[cols["cash_tips"]], 64)
		creditTips, _ := strconv.ParseFloat(record[cols["credit_tips"]], 64)
		liquorSales, _ := strconv.ParseFloat(record[cols["liquor_sales"]], 64)

		shifts = append(shifts, database.Shift{
			Date:        date,
			EmployeeID:  uint(employeeID),
			RoleID:      uint(roleID),
			Hours:       hours,
			CashTips:    cashTips,
			CreditTips:  creditTips,
			LiquorSales: liquorSales,
		})
	}

	if len(shifts) > 0 {
		if err := h.DB.Create(&shifts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not import shifts"})
			return
		}
	}

	h.RecordUsage(c, len(shifts), 0)
	c.JSON(http.StatusOK, gin.H{"imported": len(shifts)})
}
