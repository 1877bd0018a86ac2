package repository

import (
	"iov-backend/internal/models"

	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Create 创建告警
func (r *AlertRepository) Create(alert *models.Alert) error {
	return r.db.Create(alert).Error
}

// GetByID 根据ID获取告警
func (r *AlertRepository) GetByID(id uint) (*models.Alert, error) {
	var alert models.Alert
	err := r.db.First(&alert, id).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// Update 更新告警
func (r *AlertRepository) Update(alert *models.Alert) error {
	return r.db.Save(alert).Error
}

// Delete 删除告警
func (r *AlertRepository) Delete(id uint) error {
	return r.db.Delete(&models.Alert{}, id).Error
}

// List 获取告警列表，支持分页和过滤
func (r *AlertRepository) List(current, size int, filters map[string]interface{}) ([]models.Alert, int64, error) {
	var alerts []models.Alert
	var total int64

	query := r.db.Model(&models.Alert{})

	// 应用过滤条件
	for key, value := range filters {
		if value != nil && value != "" {
			switch key {
			case "name":
				query = query.Where("name LIKE ?", "%"+value.(string)+"%")
			default:
				query = query.Where(key+" = ?", value)
			}
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (current - 1) * size
	if err := query.Offset(offset).Limit(size).Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

// GetByStatus 根据状态获取告警列表
func (r *AlertRepository) GetByStatus(status models.AlertStatus) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

// GetActiveAlerts 获取所有活跃告警
func (r *AlertRepository) GetActiveAlerts() ([]models.Alert, error) {
	return r.GetByStatus(models.AlertStatusActive)
}

// GetRecentAlerts 获取最近的告警（按时间倒序）
func (r *AlertRepository) GetRecentAlerts(limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}
