package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/justsurfingit/job-board-api/internal/models"
	"github.com/justsurfingit/job-board-api/internal/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var companyColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"description": "description",
	"website":     "website",
	"location":    "location",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// CompanySort is the sort allow-list for companies, defaulting to name ascending.
var CompanySort = pagination.NewSortSpec(
	pagination.Order{Field: "name", Direction: pagination.Asc},
	sortFields(companyColumns)...,
)

type CompanyRepository struct {
	db  *gorm.DB
	now Clock
}

func NewCompanyRepository(db *gorm.DB, now Clock) *CompanyRepository {
	return &CompanyRepository{db: db, now: now}
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find company %d: %w", id, err)
	}
	return &company, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context, req pagination.Request) ([]models.Company, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	var companies []models.Company
	err := r.db.WithContext(ctx).
		Scopes(orderBy(req.Orders, companyColumns), paginate(req)).
		Find(&companies).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	return companies, total, nil
}

// Create inserts c, stamping both timestamps and the initial version.
func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) error {
	now := r.now()
	c.CreatedAt, c.UpdatedAt, c.Version = now, now, 1

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

// Update writes c only if the stored version still equals c.Version, then
// bumps the version. A stale c yields ErrConflict.
func (r *CompanyRepository) Update(ctx context.Context, c *models.Company) error {
	now := r.now()
	res := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ? AND version = ?", c.ID, c.Version).
		Updates(map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
			"website":     c.Website,
			"location":    c.Location,
			"updated_at":  now,
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return fmt.Errorf("update company %d: %w", c.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}

	c.UpdatedAt = now
	c.Version++
	return nil
}

// Delete removes c together with its jobs.
func (r *CompanyRepository) Delete(ctx context.Context, c *models.Company) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("company_id = ?", c.ID).Delete(&models.Job{}).Error; err != nil {
		return fmt.Errorf("delete jobs of company %d: %w", c.ID, err)
	}
	if err := db.Delete(&models.Company{}, c.ID).Error; err != nil {
		return fmt.Errorf("delete company %d: %w", c.ID, err)
	}
	return nil
}
