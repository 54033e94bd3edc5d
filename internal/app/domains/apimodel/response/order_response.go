package response

// OrderResponse 订单响应
type OrderResponse struct {
	ID                int64   `json:"id" example:"1"`
	OrderNumber       string  `json:"orderNumber" example:"ON-0123456789"`
	OrderName         string  `json:"orderName" example:"Brackets"`
	ClientName        string  `json:"clientName" example:"John Doe"`
	ClientPhoneNumber string  `json:"clientPhoneNumber" example:"+37060000555"`
	ClientEmail       string  `json:"clientEmail" example:"john@example.com"`
	OrderTerm         string  `json:"orderTerm" example:"2024-12-31"`
	OrderStatus       string  `json:"orderStatus" example:"Pending"`
	OrderPrice        float64 `json:"orderPrice" example:"30"`
	Comments          string  `json:"comments"`
	OrderUpdateDate   string  `json:"orderUpdateDate" example:"2024-01-22"`
	IsDeleted         bool    `json:"isDeleted"`
}

// ItemResponse 订单项响应
type ItemResponse struct {
	ID             int64   `json:"id" example:"1"`
	OrderID        int64   `json:"orderId" example:"1"`
	ItemName       string  `json:"itemName" example:"Bolt M8"`
	ItemCode       string  `json:"itemCode" example:"B-M8"`
	ItemRevision   string  `json:"itemRevision" example:"A"`
	ItemCount      int64   `json:"itemCount" example:"2"`
	ItemPrice      float64 `json:"itemPrice" example:"10.5"`
	TotalPrice     float64 `json:"totalPrice" example:"21"`
	LinkToImg      string  `json:"linkToImg"`
	ItemUpdateDate string  `json:"itemUpdateDate" example:"2024-01-22"`
	IsDeleted      bool    `json:"isDeleted"`
}

// DeleteResponse 删除结果
type DeleteResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"order was deleted with ID: 1"`
}
