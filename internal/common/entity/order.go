package entity

// Order 订单表
type Order struct {
	ID                int64   `gorm:"column:id;primaryKey;autoIncrement"`
	OrderNumber       string  `gorm:"column:order_number;type:varchar(13);uniqueIndex:uk_order_number;not null"`
	OrderName         string  `gorm:"column:order_name;type:varchar(50);not null"`
	ClientName        string  `gorm:"column:client_name;type:varchar(50);not null"`
	ClientPhoneNumber string  `gorm:"column:client_phone_number;type:varchar(20);not null"`
	ClientEmail       string  `gorm:"column:client_email;type:varchar(50);not null"`
	OrderTerm         string  `gorm:"column:order_term;type:varchar(50);not null"`
	OrderStatus       string  `gorm:"column:order_status;type:varchar(50);not null"`
	OrderPrice        float64 `gorm:"column:order_price;not null;default:0"`
	Comments          string  `gorm:"column:comments;type:varchar(200);not null"`
	OrderUpdateDate   string  `gorm:"column:order_update_date;type:varchar(10);not null;index:idx_deleted_update"`
	IsDeleted         bool    `gorm:"column:is_deleted;not null;default:false;index:idx_deleted_update"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
