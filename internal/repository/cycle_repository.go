package repository

import (
	"iov-backend/internal/models"

	"gorm.io/gorm"
)

type CycleRepository struct {
	db *gorm.DB
}

func NewCycleRepository(db *gorm.DB) *CycleRepository {
	return &CycleRepository{db: db}
}

// Create 保存一条周期记录
func (r *CycleRepository) Create(record *models.CycleRecord) error {
	return r.db.Create(record).Error
}

// List 获取周期记录列表，支持分页，按时隙倒序
func (r *CycleRepository) List(current, size int) ([]models.CycleRecord, int64, error) {
	var records []models.CycleRecord
	var total int64

	query := r.db.Model(&models.CycleRecord{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (current - 1) * size
	if err := query.Offset(offset).Limit(size).Order("time_step DESC").Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetRecent 获取最近的周期记录（按时隙倒序）
func (r *CycleRepository) GetRecent(limit int) ([]models.CycleRecord, error) {
	var records []models.CycleRecord
	err := r.db.Order("time_step DESC").Limit(limit).Find(&records).Error
	return records, err
}

// Count 统计周期记录数量
func (r *CycleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.CycleRecord{}).Count(&count).Error
	return count, err
}
