package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Salaries go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Company struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	Description *string   `gorm:"type:text"`
	Website     *string
	Location    string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	Version     int       `gorm:"not null"`

	// Deleting a company removes its jobs.
	Jobs []Job `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (Company) TableName() string {
	return "company"
}

type Job struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text;not null"`

	// Foreign Key
	CompanyID uint `gorm:"not null;index:idx_job_company_id"`
	// Association: filled by Preload
	Company Company

	Location        string           `gorm:"not null"`
	SalaryMin       *decimal.Decimal `gorm:"type:numeric(10,2)"`
	SalaryMax       *decimal.Decimal `gorm:"type:numeric(10,2)"`
	JobType         JobType          `gorm:"type:varchar(32);not null"`
	ExperienceLevel ExperienceLevel  `gorm:"type:varchar(32);not null"`
	RemoteOption    RemoteOption     `gorm:"type:varchar(32);not null"`
	PostedDate      time.Time        `gorm:"not null;index:idx_job_posted_date"`
	ExpiryDate      *time.Time
	IsActive        bool      `gorm:"not null;index:idx_job_is_active"`
	ApplicationURL  *string   `gorm:"column:application_url;size:500"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
	Version         int       `gorm:"not null"`
}

func (Job) TableName() string {
	return "job"
}
