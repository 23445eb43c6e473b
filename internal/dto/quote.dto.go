package dto

type QuoteDTO struct {
	TotalPrice   int    `json:"total_price"`
	AllExpress   bool   `json:"all_express"`
	DeliveryDate string `json:"delivery_date"`
	DeliveryTime string `json:"delivery_time"`
}
