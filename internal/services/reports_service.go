package services

import "cabadmin/internal/repositories"

type ReportsService struct {
	StatsRepo repositories.StatsRepository
}

// DashboardReport adds the derived average to the raw counters.
type DashboardReport struct {
	repositories.DashboardStats
	AvgRevenuePerTrip float64 `json:"avg_revenue_per_trip"`
}

func (s ReportsService) Dashboard() (DashboardReport, error) {
	stats, err := s.StatsRepo.Dashboard()
	if err != nil {
		return DashboardReport{}, err
	}
	out := DashboardReport{DashboardStats: stats}
	if stats.CompletedTrips > 0 {
		out.AvgRevenuePerTrip = stats.TotalRevenue / float64(stats.CompletedTrips)
	}
	return out, nil
}

func (s ReportsService) TripStatusDistribution() ([]repositories.StatusCount, error) {
	return s.StatsRepo.TripStatusDistribution()
}

func (s ReportsService) RevenueByVehicleType() ([]repositories.VehicleTypeRevenue, error) {
	return s.StatsRepo.RevenueByVehicleType()
}

func (s ReportsService) PaymentModeSummary() ([]repositories.PaymentModeSummary, error) {
	return s.StatsRepo.PaymentModeSummary()
}
