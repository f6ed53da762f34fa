package models

// DashboardStats - агрегированные счетчики инцидентов для панели пожарной команды
type DashboardStats struct {
	New      int `json:"new"`
	Active   int `json:"active"`
	Resolved int `json:"resolved"`
	Total    int `json:"total"`
}

// ComputeDashboardStats вычисляет статистику локально из кешированного списка
// инцидентов. Используется как фолбэк, когда серверная статистика недоступна.
func ComputeDashboardStats(incidents []Incident) DashboardStats {
	stats := DashboardStats{Total: len(incidents)}
	for _, incident := range incidents {
		switch incident.Status {
		case StatusNew:
			stats.New++
		case StatusEnroute, StatusArrived, StatusFighting:
			stats.Active++
		case StatusExtinguished, StatusClosed:
			stats.Resolved++
		}
	}
	return stats
}
