package database

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arnavshah/tipout-api-go/pkg/models"
)

// Employee represents the employees table
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Role represents the roles table; its tipout rules live in RoleConfig versions
type Role struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"unique;not null" json:"name"`
	Configs   []RoleConfig `gorm:"foreignKey:RoleID" json:"configs"`
	CreatedAt time.Time    `json:"created_at"`
}

// RoleConfig represents the role_configs table: one effective-dated version
// of a role's rule for one tipout type
type RoleConfig struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	RoleID            uint       `gorm:"index;not null" json:"role_id"`
	TipoutType        string     `gorm:"not null" json:"tipout_type"`
	PercentageRate    float64    `json:"percentage_rate"`
	EffectiveFrom     time.Time  `gorm:"not null" json:"effective_from"`
	EffectiveTo       *time.Time `json:"effective_to"`
	PaysTipout        *bool      `json:"pays_tipout"`
	ReceivesTipout    *bool      `json:"receives_tipout"`
	DistributionGroup string     `json:"distribution_group"`
	TipPoolGroup      string     `json:"tip_pool_group"`
	BasePayRate       float64    `json:"base_pay_rate"`
}

// Shift represents the shifts table
type Shift struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	EmployeeID  uint      `gorm:"index;not null" json:"employee_id"`
	Employee    Employee  `json:"employee"`
	RoleID      uint      `gorm:"index;not null" json:"role_id"`
	Role        Role      `json:"role"`
	Hours       float64   `json:"hours"`
	CashTips    float64   `json:"cash_tips"`
	CreditTips  float64   `json:"credit_tips"`
	LiquorSales float64   `json:"liquor_sales"`
	CreatedAt   time.Time `json:"created_at"`
}

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	KeyID        uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date         string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalShifts  int    `gorm:"default:0" json:"total_shifts"`
	TotalReports int    `gorm:"default:0" json:"total_reports"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "tipout.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&Employee{}, &Role{}, &RoleConfig{}, &Shift{},
		&APIKey{}, &APIUsage{}, &MasterUser{})

	return db
}

// Model converts a stored config version to the engine's input shape
func (c RoleConfig) Model() models.RoleConfig {
	return models.RoleConfig{
		ID:                strconv.FormatUint(uint64(c.ID), 10),
		TipoutType:        models.TipoutType(c.TipoutType),
		PercentageRate:    c.PercentageRate,
		EffectiveFrom:     c.EffectiveFrom,
		EffectiveTo:       c.EffectiveTo,
		PaysTipout:        c.PaysTipout,
		ReceivesTipout:    c.ReceivesTipout,
		DistributionGroup: c.DistributionGroup,
		TipPoolGroup:      c.TipPoolGroup,
		BasePayRate:       c.BasePayRate,
	}
}

// Model converts a stored role and its full config history
func (r Role) Model() models.Role {
	configs := make([]models.RoleConfig, 0, len(r.Configs))
	for _, c := range r.Configs {
		configs = append(configs, c.Model())
	}
	return models.Role{Name: r.Name, Configs: configs}
}

// Model converts a stored shift, joined with its employee and role, to the
// engine's input shape
func (s Shift) Model() models.Shift {
	return models.Shift{
		ID:   strconv.FormatUint(uint64(s.ID), 10),
		Date: s.Date,
		Employee: models.Employee{
			ID:   strconv.FormatUint(uint64(s.EmployeeID), 10),
			Name: s.Employee.Name,
		},
		Role:        s.Role.Model(),
		Hours:       s.Hours,
		CashTips:    s.CashTips,
		CreditTips:  s.CreditTips,
		LiquorSales: s.LiquorSales,
	}
}
