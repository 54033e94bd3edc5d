package rpitem

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/domains/repo/rptx"
	"oms/internal/app/pkg/errorx"
	"oms/internal/common/entity"
)

// OrderItemRepositoryImpl 订单项仓储实现（GORM）
type OrderItemRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderItemRepository 创建订单项仓储实例
func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &OrderItemRepositoryImpl{db: db}
}

// Create 创建订单项
func (r *OrderItemRepositoryImpl) Create(ctx context.Context, item *etorder.OrderItem) error {
	po := toGormModel(item)
	if err := rptx.DB(ctx, r.db).Create(po).Error; err != nil {
		return err
	}
	item.ID = po.ID
	return nil
}

// Save 全量更新订单项
func (r *OrderItemRepositoryImpl) Save(ctx context.Context, item *etorder.OrderItem) error {
	return rptx.DB(ctx, r.db).Save(toGormModel(item)).Error
}

// GetByID 根据ID查询订单项
func (r *OrderItemRepositoryImpl) GetByID(ctx context.Context, itemID int64) (*etorder.OrderItem, error) {
	var po entity.OrderItem
	err := rptx.DB(ctx, r.db).Where("id = ?", itemID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.NotFoundf("order item not found with ID: %d", itemID)
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// ListByOrder 按订单外键查询订单项
func (r *OrderItemRepositoryImpl) ListByOrder(ctx context.Context, orderID int64) ([]*etorder.OrderItem, error) {
	var pos []entity.OrderItem
	err := rptx.DB(ctx, r.db).Where("order_id = ?", orderID).Order("id ASC").Find(&pos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*etorder.OrderItem, 0, len(pos))
	for i := range pos {
		items = append(items, toDomainModel(&pos[i]))
	}
	return items, nil
}

// MarkDeletedByOrder 级联软删除
func (r *OrderItemRepositoryImpl) MarkDeletedByOrder(ctx context.Context, orderID int64) (int64, error) {
	result := rptx.DB(ctx, r.db).
		Model(&entity.OrderItem{}).
		Where("order_id = ? AND is_deleted = ?", orderID, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

func toGormModel(item *etorder.OrderItem) *entity.OrderItem {
	return &entity.OrderItem{
		ID:             item.ID,
		OrderID:        item.OrderID,
		ItemName:       item.ItemName,
		ItemCode:       item.ItemCode,
		ItemRevision:   item.ItemRevision,
		ItemCount:      item.ItemCount,
		ItemPrice:      item.ItemPrice,
		TotalPrice:     item.TotalPrice,
		LinkToImg:      item.LinkToImg,
		ItemUpdateDate: item.ItemUpdateDate,
		IsDeleted:      item.IsDeleted,
	}
}

// toDomainModel 读取时按数量*单价重新推导总价，不信任库中冗余列
func toDomainModel(po *entity.OrderItem) *etorder.OrderItem {
	return &etorder.OrderItem{
		ID:             po.ID,
		OrderID:        po.OrderID,
		ItemName:       po.ItemName,
		ItemCode:       po.ItemCode,
		ItemRevision:   po.ItemRevision,
		ItemCount:      po.ItemCount,
		ItemPrice:      po.ItemPrice,
		TotalPrice:     etorder.LineTotal(po.ItemCount, po.ItemPrice),
		LinkToImg:      po.LinkToImg,
		ItemUpdateDate: po.ItemUpdateDate,
		IsDeleted:      po.IsDeleted,
	}
}
