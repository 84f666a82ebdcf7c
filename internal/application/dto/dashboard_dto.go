package dto

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// TotalRevenue va como string decimal con 2 dígitos fraccionarios fijos
// (ej: "1500.00"); WarehouseCapacity es un porcentaje entero en [0, 100].
type DashboardStatsDTO struct {
	ActiveOrders      int64  `json:"activeOrders"`      // órdenes en tránsito
	TotalRevenue      string `json:"totalRevenue"`      // suma de órdenes entregadas
	ActiveDrivers     int64  `json:"activeDrivers"`     // conductores con cuenta activa
	WarehouseCapacity int    `json:"warehouseCapacity"` // % de capacidad nominal ocupada
}
