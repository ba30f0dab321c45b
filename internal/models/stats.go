package models

// SellerStats агрегированные показатели кабинета продавца.
// TotalViews складывается из счетчиков просмотров товаров.
// ActiveOrders остается нулевым, пока не подключен сервис заказов.
type SellerStats struct {
	TotalProducts int     `json:"total_products"` // Количество товаров продавца
	TotalRevenue  float64 `json:"total_revenue"`  // Сумма цен товаров продавца
	TotalViews    int64   `json:"total_views"`    // Суммарные просмотры товаров
	ActiveOrders  int     `json:"active_orders"`  // Активные заказы
}
