package repository

import (
	"iov-backend/internal/models"

	"gorm.io/gorm"
)

type InfraRepository struct {
	db *gorm.DB
}

func NewInfraRepository(db *gorm.DB) *InfraRepository {
	return &InfraRepository{db: db}
}

// Create 创建基础设施节点
func (r *InfraRepository) Create(node *models.InfraNode) error {
	return r.db.Create(node).Error
}

// GetByID 根据ID获取节点
func (r *InfraRepository) GetByID(id uint) (*models.InfraNode, error) {
	var node models.InfraNode
	err := r.db.First(&node, id).Error
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// GetByName 根据名称获取节点
func (r *InfraRepository) GetByName(name string) (*models.InfraNode, error) {
	var node models.InfraNode
	err := r.db.Where("name = ?", name).First(&node).Error
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// List 获取全部基础设施节点，按类型和名称排序
func (r *InfraRepository) List() ([]models.InfraNode, error) {
	var nodes []models.InfraNode
	err := r.db.Order("infra_type, name").Find(&nodes).Error
	return nodes, err
}

// ListByType 按类型获取节点列表
func (r *InfraRepository) ListByType(infraType models.InfraType) ([]models.InfraNode, error) {
	var nodes []models.InfraNode
	err := r.db.Where("infra_type = ?", infraType).Order("name").Find(&nodes).Error
	return nodes, err
}

// Count 统计节点数量
func (r *InfraRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.InfraNode{}).Count(&count).Error
	return count, err
}
