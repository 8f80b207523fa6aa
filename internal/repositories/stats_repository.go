package repositories

import (
	"database/sql"

	intconfig "cabadmin/internal/config"
)

type StatsRepository struct {
	DB *sql.DB
}

func (r StatsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// DashboardStats feeds the dashboard metric cards.
type DashboardStats struct {
	TotalUsers        int     `json:"total_users"`
	TotalDrivers      int     `json:"total_drivers"`
	TotalVehicles     int     `json:"total_vehicles"`
	TotalTrips        int     `json:"total_trips"`
	ActiveDrivers     int     `json:"active_drivers"`
	AvailableVehicles int     `json:"available_vehicles"`
	PendingTrips      int     `json:"pending_trips"`
	OngoingTrips      int     `json:"ongoing_trips"`
	CompletedTrips    int     `json:"completed_trips"`
	TotalRevenue      float64 `json:"total_revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type VehicleTypeRevenue struct {
	VehicleType  string  `json:"vehicle_type"`
	TotalTrips   int     `json:"total_trips"`
	TotalRevenue float64 `json:"total_revenue"`
}

type PaymentModeSummary struct {
	PaymentMode string  `json:"payment_mode"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

func (r StatsRepository) Dashboard() (DashboardStats, error) {
	var s DashboardStats
	db := r.db()

	counts := []struct {
		query string
		dst   *int
	}{
		{`SELECT COUNT(*) FROM users`, &s.TotalUsers},
		{`SELECT COUNT(*) FROM drivers`, &s.TotalDrivers},
		{`SELECT COUNT(*) FROM vehicles`, &s.TotalVehicles},
		{`SELECT COUNT(*) FROM trips`, &s.TotalTrips},
		{`SELECT COUNT(*) FROM drivers WHERE status = 'Active'`, &s.ActiveDrivers},
		{`SELECT COUNT(*) FROM vehicles WHERE status = 'Available'`, &s.AvailableVehicles},
		{`SELECT COUNT(*) FROM trips WHERE status = 'Pending'`, &s.PendingTrips},
		{`SELECT COUNT(*) FROM trips WHERE status IN ('Accepted', 'In_Progress')`, &s.OngoingTrips},
		{`SELECT COUNT(*) FROM trips WHERE status = 'Completed'`, &s.CompletedTrips},
	}
	for _, c := range counts {
		if err := db.QueryRow(c.query).Scan(c.dst); err != nil {
			return s, err
		}
	}

	err := db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE payment_status = 'Completed'`).Scan(&s.TotalRevenue)
	return s, err
}

func (r StatsRepository) TripStatusDistribution() ([]StatusCount, error) {
	rows, err := r.db().Query(`
		SELECT status, COUNT(*) FROM trips GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StatusCount{}
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (r StatsRepository) RevenueByVehicleType() ([]VehicleTypeRevenue, error) {
	rows, err := r.db().Query(`
		SELECT vt.vehicle_type,
		       COUNT(t.id),
		       COALESCE(SUM(t.fare), 0)
		FROM vehicle_types vt
		LEFT JOIN vehicles v ON vt.vehicle_type = v.vehicle_type
		LEFT JOIN trips t ON v.id = t.vehicle_id AND t.status = 'Completed'
		GROUP BY vt.vehicle_type
		ORDER BY COALESCE(SUM(t.fare), 0) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VehicleTypeRevenue{}
	for rows.Next() {
		var v VehicleTypeRevenue
		if err := rows.Scan(&v.VehicleType, &v.TotalTrips, &v.TotalRevenue); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r StatsRepository) PaymentModeSummary() ([]PaymentModeSummary, error) {
	rows, err := r.db().Query(`
		SELECT payment_mode, COUNT(*), COALESCE(SUM(amount), 0)
		FROM payments
		WHERE payment_status = 'Completed'
		GROUP BY payment_mode
		ORDER BY COALESCE(SUM(amount), 0) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PaymentModeSummary{}
	for rows.Next() {
		var p PaymentModeSummary
		if err := rows.Scan(&p.PaymentMode, &p.Count, &p.TotalAmount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
