package entity

// OrderItem 订单项表
type OrderItem struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID        int64   `gorm:"column:order_id;not null;index:idx_order_id"`
	ItemName       string  `gorm:"column:item_name;type:varchar(50);not null"`
	ItemCode       string  `gorm:"column:item_code;type:varchar(50);not null"`
	ItemRevision   string  `gorm:"column:item_revision;type:varchar(50);not null"`
	ItemCount      int64   `gorm:"column:item_count;not null;default:0"`
	ItemPrice      float64 `gorm:"column:item_price;not null;default:0"`
	TotalPrice     float64 `gorm:"column:total_price;not null;default:0"`
	LinkToImg      string  `gorm:"column:link_to_img;type:varchar(255);not null"`
	ItemUpdateDate string  `gorm:"column:item_update_date;type:varchar(10);not null"`
	IsDeleted      bool    `gorm:"column:is_deleted;not null;default:false"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// Models 需要迁移的全部表
func Models() []interface{} {
	return []interface{}{&Order{}, &OrderItem{}}
}
