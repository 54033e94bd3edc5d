package request

// OrderRequest 创建/修改订单请求，字段规则由领域层校验
type OrderRequest struct {
	OrderName         string `json:"orderName" binding:"required" example:"Brackets"`
	ClientName        string `json:"clientName" binding:"required" example:"John Doe"`
	ClientPhoneNumber string `json:"clientPhoneNumber" example:"+37060000555"`
	ClientEmail       string `json:"clientEmail" example:"john@example.com"`
	OrderTerm         string `json:"orderTerm" example:"2024-12-31"`
	OrderStatus       string `json:"orderStatus" example:"Pending"`
	Comments          string `json:"comments" example:"deliver before noon"`
}

// ItemRequest 新增/修改订单项请求
// totalPrice 由服务端计算，请求中即使携带也会被忽略
type ItemRequest struct {
	ItemName     string   `json:"itemName" binding:"required" example:"Bolt M8"`
	ItemCode     string   `json:"itemCode" example:"B-M8"`
	ItemRevision string   `json:"itemRevision" example:"A"`
	ItemCount    *int64   `json:"itemCount" binding:"required" example:"2"`
	ItemPrice    *float64 `json:"itemPrice" binding:"required" example:"10.5"`
	LinkToImg    string   `json:"linkToImg" example:"https://cdn.example.com/bolt.png"`
}
