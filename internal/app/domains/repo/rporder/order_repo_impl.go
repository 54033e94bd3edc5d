package rporder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/domains/repo/rptx"
	"oms/internal/app/pkg/errorx"
	"oms/internal/common/entity"
)

const activeOrderSort = "order_update_date DESC, order_term ASC, client_name ASC, order_name ASC, id ASC"

// OrderRepositoryImpl 订单仓储实现（GORM）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单，将领域对象转换为 GORM 模型后存储
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po := toGormModel(order)
	if err := rptx.DB(ctx, r.db).Create(po).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorx.Wrap(errorx.KindConflict, err, "order number already exists")
		}
		return err
	}
	// 将数据库生成的ID回写到领域对象
	order.ID = po.ID
	return nil
}

// Save 全量更新订单
func (r *OrderRepositoryImpl) Save(ctx context.Context, order *etorder.Order) error {
	return rptx.DB(ctx, r.db).Save(toGormModel(order)).Error
}

// GetByID 根据ID查询订单
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID int64) (*etorder.Order, error) {
	return r.get(rptx.DB(ctx, r.db), orderID)
}

// GetByIDForUpdate 加行锁查询，sqlite 方言会忽略 FOR UPDATE
func (r *OrderRepositoryImpl) GetByIDForUpdate(ctx context.Context, orderID int64) (*etorder.Order, error) {
	return r.get(rptx.DB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), orderID)
}

func (r *OrderRepositoryImpl) get(db *gorm.DB, orderID int64) (*etorder.Order, error) {
	var po entity.Order
	err := db.Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.NotFoundf("order not found with ID: %d", orderID)
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// ExistsByOrderNumber 检查订单号是否已存在
func (r *OrderRepositoryImpl) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := rptx.DB(ctx, r.db).Model(&entity.Order{}).Where("order_number = ?", orderNumber).Count(&count).Error
	return count > 0, err
}

// ListActive 查询未删除订单
func (r *OrderRepositoryImpl) ListActive(ctx context.Context) ([]*etorder.Order, error) {
	var pos []entity.Order
	err := rptx.DB(ctx, r.db).
		Where("is_deleted = ?", false).
		Order(activeOrderSort).
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return toDomainModels(pos), nil
}

// SearchActive 多字段 OR 模糊查询，参数中的 % _ 按字面匹配
func (r *OrderRepositoryImpl) SearchActive(ctx context.Context, param string) ([]*etorder.Order, error) {
	pattern := "%" + escapeLike(strings.ToLower(param)) + "%"

	var pos []entity.Order
	err := rptx.DB(ctx, r.db).
		Where("is_deleted = ?", false).
		Where(
			"(LOWER(order_number) LIKE ? ESCAPE '!' OR LOWER(order_name) LIKE ? ESCAPE '!' OR "+
				"LOWER(client_name) LIKE ? ESCAPE '!' OR LOWER(client_phone_number) LIKE ? ESCAPE '!' OR "+
				"LOWER(client_email) LIKE ? ESCAPE '!')",
			pattern, pattern, pattern, pattern, pattern,
		).
		Order(activeOrderSort).
		Find(&pos).Error
	if err != nil {
		return nil, fmt.Errorf("search orders failed: %w", err)
	}
	return toDomainModels(pos), nil
}

// MarkDeleted 标记订单为已删除
func (r *OrderRepositoryImpl) MarkDeleted(ctx context.Context, orderID int64) error {
	result := rptx.DB(ctx, r.db).
		Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.NotFoundf("order not found with ID: %d", orderID)
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

// toGormModel 领域对象转换为 GORM 模型
func toGormModel(order *etorder.Order) *entity.Order {
	return &entity.Order{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		OrderName:         order.OrderName,
		ClientName:        order.ClientName,
		ClientPhoneNumber: order.ClientPhoneNumber,
		ClientEmail:       order.ClientEmail,
		OrderTerm:         order.OrderTerm,
		OrderStatus:       order.OrderStatus,
		OrderPrice:        order.OrderPrice,
		Comments:          order.Comments,
		OrderUpdateDate:   order.OrderUpdateDate,
		IsDeleted:         order.IsDeleted,
	}
}

// toDomainModel GORM 模型转换为领域对象
func toDomainModel(po *entity.Order) *etorder.Order {
	return &etorder.Order{
		ID:                po.ID,
		OrderNumber:       po.OrderNumber,
		OrderName:         po.OrderName,
		ClientName:        po.ClientName,
		ClientPhoneNumber: po.ClientPhoneNumber,
		ClientEmail:       po.ClientEmail,
		OrderTerm:         po.OrderTerm,
		OrderStatus:       po.OrderStatus,
		OrderPrice:        po.OrderPrice,
		Comments:          po.Comments,
		OrderUpdateDate:   po.OrderUpdateDate,
		IsDeleted:         po.IsDeleted,
	}
}

func toDomainModels(pos []entity.Order) []*etorder.Order {
	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		orders = append(orders, toDomainModel(&pos[i]))
	}
	return orders
}
