package etorder

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"oms/internal/app/pkg/errorx"
)

// Order 订单聚合根（领域对象）
// 订单项不挂在订单上，通过 OrderItem.OrderID 显式查询
type Order struct {
	ID                int64   // 订单ID（自增）
	OrderNumber       string  // 订单号，创建后不可变
	OrderName         string  // 订单名称
	ClientName        string  // 客户名称
	ClientPhoneNumber string  // 客户电话
	ClientEmail       string  // 客户邮箱
	OrderTerm         string  // 交付期限
	OrderStatus       string  // 订单状态（自由文本）
	OrderPrice        float64 // 订单总价（由未删除订单项汇总得出）
	Comments          string  // 备注
	OrderUpdateDate   string  // 最后修改日期
	IsDeleted         bool    // 软删除标记
}

// OrderDetails 订单可编辑的描述字段
type OrderDetails struct {
	OrderName         string `validate:"required,notblank,max=50"`
	ClientName        string `validate:"required,notblank,max=50"`
	ClientPhoneNumber string `validate:"max=20"`
	ClientEmail       string `validate:"omitempty,email,max=50"`
	OrderTerm         string `validate:"max=50"`
	OrderStatus       string `validate:"max=50"`
	Comments          string `validate:"max=200"`
}

// NewOrder 创建订单（工厂方法），价格初始为 0
func NewOrder(orderNumber string, details OrderDetails, today string) (*Order, error) {
	if err := Validate(details); err != nil {
		return nil, err
	}
	o := &Order{OrderNumber: orderNumber}
	o.applyDetails(details)
	o.OrderUpdateDate = today
	return o, nil
}

// Update 覆盖描述字段并刷新价格与修改日期（领域行为）
func (o *Order) Update(details OrderDetails, price float64, today string) error {
	if err := Validate(details); err != nil {
		return err
	}
	o.applyDetails(details)
	o.Reprice(price, today)
	return nil
}

// Reprice 写入重新计算后的价格并刷新修改日期
func (o *Order) Reprice(price float64, today string) {
	o.OrderPrice = price
	o.OrderUpdateDate = today
}

// MarkDeleted 标记为已删除（终态）
func (o *Order) MarkDeleted() {
	o.IsDeleted = true
}

func (o *Order) applyDetails(d OrderDetails) {
	o.OrderName = d.OrderName
	o.ClientName = d.ClientName
	o.ClientPhoneNumber = d.ClientPhoneNumber
	o.ClientEmail = d.ClientEmail
	o.OrderTerm = d.OrderTerm
	o.OrderStatus = d.OrderStatus
	o.Comments = d.Comments
}

// OrderItem 订单项实体
type OrderItem struct {
	ID             int64
	OrderID        int64 // 所属订单，终身不变
	ItemName       string
	ItemCode       string
	ItemRevision   string
	ItemCount      int64
	ItemPrice      float64
	TotalPrice     float64 // ItemCount * ItemPrice，服务端计算
	LinkToImg      string
	ItemUpdateDate string
	IsDeleted      bool
}

// ItemDetails 订单项可编辑字段
// ItemCount / ItemPrice 为指针以区分缺失和 0
type ItemDetails struct {
	ItemName     string   `validate:"required,notblank,max=50"`
	ItemCode     string   `validate:"max=50"`
	ItemRevision string   `validate:"max=50"`
	ItemCount    *int64   `validate:"required,min=0"`
	ItemPrice    *float64 `validate:"required,min=0"`
	LinkToImg    string   `validate:"max=255"`
}

// NewOrderItem 创建订单项并挂到指定订单
func NewOrderItem(orderID int64, details ItemDetails, today string) (*OrderItem, error) {
	item := &OrderItem{OrderID: orderID}
	if err := item.Update(details, today); err != nil {
		return nil, err
	}
	return item, nil
}

// Update 覆盖可编辑字段，重新计算总价并刷新修改日期
func (i *OrderItem) Update(details ItemDetails, today string) error {
	if err := Validate(details); err != nil {
		return err
	}
	i.ItemName = details.ItemName
	i.ItemCode = details.ItemCode
	i.ItemRevision = details.ItemRevision
	i.ItemCount = *details.ItemCount
	i.ItemPrice = *details.ItemPrice
	i.TotalPrice = LineTotal(i.ItemCount, i.ItemPrice)
	i.LinkToImg = details.LinkToImg
	i.ItemUpdateDate = today
	return nil
}

// MarkDeleted 标记为已删除（终态）
func (i *OrderItem) MarkDeleted() {
	i.IsDeleted = true
}

// LineTotal 计算单个订单项总价
func LineTotal(count int64, price float64) float64 {
	total, _ := decimal.NewFromInt(count).Mul(decimal.NewFromFloat(price)).Float64()
	return total
}

// SumActiveTotals 汇总未删除订单项的总价，总价按数量*单价重新推导
func SumActiveTotals(items []*OrderItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		if item.IsDeleted {
			continue
		}
		sum = sum.Add(decimal.NewFromInt(item.ItemCount).Mul(decimal.NewFromFloat(item.ItemPrice)))
	}
	total, _ := sum.Float64()
	return total
}

// ActiveItems 过滤出未删除的订单项
func ActiveItems(items []*OrderItem) []*OrderItem {
	active := make([]*OrderItem, 0, len(items))
	for _, item := range items {
		if !item.IsDeleted {
			active = append(active, item)
		}
	}
	return active
}

// SortByName 按名称升序排序（忽略大小写）
func SortByName(items []*OrderItem) {
	sort.SliceStable(items, func(a, b int) bool {
		return strings.ToLower(items[a].ItemName) < strings.ToLower(items[b].ItemName)
	})
}

// FilterByName 按名称子串过滤（忽略大小写）
func FilterByName(items []*OrderItem, pattern string) []*OrderItem {
	needle := strings.ToLower(pattern)
	matched := make([]*OrderItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ItemName), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate 按 validate 标签校验，失败时返回 KindValidation 错误并列出字段
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errorx.Wrap(errorx.KindValidation, err, "validation failed")
	}
	details := make([]errorx.ErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, errorx.ErrorDetail{
			Path: fieldPath(fe.Field()),
			Info: ValidationMessage(fe),
		})
	}
	return errorx.Validation("validation failed", details...)
}

// ValidationMessage 根据校验标签生成可读的错误信息
func ValidationMessage(fe validator.FieldError) string {
	field := fieldPath(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	default:
		return field + " is invalid"
	}
}

// fieldPath 将 Go 字段名转为 API 字段名（ItemName -> itemName）
func fieldPath(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
