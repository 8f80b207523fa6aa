package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "cabadmin/internal/config"
	"cabadmin/internal/domain"
	"cabadmin/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// TripFilter narrows List; zero value returns every trip. FromDate and
// ToDate are YYYY-MM-DD, validated upstream, inclusive on booking_time.
type TripFilter struct {
	Statuses []string
	Search   string // matches requester or driver name
	FromDate string
	ToDate   string
}

func (r TripRepository) List(f TripFilter) ([]models.Trip, error) {
	query := `
		SELECT t.id, t.user_id, COALESCE(t.driver_id, 0), COALESCE(t.vehicle_id, 0),
		       t.pickup_location, t.dropoff_location, t.status,
		       COALESCE(t.booking_time, ''), COALESCE(t.pickup_time, ''), COALESCE(t.dropoff_time, ''),
		       t.distance, t.fare,
		       COALESCE(CONCAT(u.first_name, ' ', u.last_name), ''),
		       COALESCE(CONCAT(d.first_name, ' ', d.last_name), ''),
		       COALESCE(v.vehicle_number, '')
		FROM trips t
		LEFT JOIN users u ON t.user_id = u.id
		LEFT JOIN drivers d ON t.driver_id = d.id
		LEFT JOIN vehicles v ON t.vehicle_id = v.id`

	where := []string{}
	args := []any{}
	if len(f.Statuses) > 0 {
		placeholders := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			placeholders[i] = "?"
			args = append(args, s)
		}
		where = append(where, "t.status IN ("+strings.Join(placeholders, ",")+")")
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		where = append(where, "(CONCAT(u.first_name, ' ', u.last_name) LIKE ? OR CONCAT(d.first_name, ' ', d.last_name) LIKE ?)")
		args = append(args, like, like)
	}
	if f.FromDate != "" {
		where = append(where, "DATE(t.booking_time) >= ?")
		args = append(args, f.FromDate)
	}
	if f.ToDate != "" {
		where = append(where, "DATE(t.booking_time) <= ?")
		args = append(args, f.ToDate)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY t.booking_time DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		var distance, fare sql.NullFloat64
		if err := rows.Scan(&t.ID, &t.UserID, &t.DriverID, &t.VehicleID,
			&t.PickupLocation, &t.DropoffLocation, &t.Status,
			&t.BookingTime, &t.PickupTime, &t.DropoffTime,
			&distance, &fare,
			&t.UserName, &t.DriverName, &t.VehicleNumber); err != nil {
			return nil, err
		}
		t.Distance = nullFloatPtr(distance)
		t.Fare = nullFloatPtr(fare)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	var t models.Trip
	var distance, fare sql.NullFloat64
	err := r.db().QueryRow(`
		SELECT id, user_id, COALESCE(driver_id, 0), COALESCE(vehicle_id, 0),
		       pickup_location, dropoff_location, status,
		       COALESCE(booking_time, ''), COALESCE(pickup_time, ''), COALESCE(dropoff_time, ''),
		       distance, fare
		FROM trips WHERE id = ?`, id).
		Scan(&t.ID, &t.UserID, &t.DriverID, &t.VehicleID,
			&t.PickupLocation, &t.DropoffLocation, &t.Status,
			&t.BookingTime, &t.PickupTime, &t.DropoffTime,
			&distance, &fare)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	t.Distance = nullFloatPtr(distance)
	t.Fare = nullFloatPtr(fare)
	return t, err
}

// GetDetail returns one trip with requester, driver and vehicle display
// fields resolved.
func (r TripRepository) GetDetail(id int64) (models.Trip, error) {
	var t models.Trip
	var distance, fare sql.NullFloat64
	err := r.db().QueryRow(`
		SELECT t.id, t.user_id, COALESCE(t.driver_id, 0), COALESCE(t.vehicle_id, 0),
		       t.pickup_location, t.dropoff_location, t.status,
		       COALESCE(t.booking_time, ''), COALESCE(t.pickup_time, ''), COALESCE(t.dropoff_time, ''),
		       t.distance, t.fare,
		       COALESCE(CONCAT(u.first_name, ' ', u.last_name), ''),
		       COALESCE(CONCAT(d.first_name, ' ', d.last_name), ''),
		       COALESCE(v.vehicle_number, '')
		FROM trips t
		LEFT JOIN users u ON t.user_id = u.id
		LEFT JOIN drivers d ON t.driver_id = d.id
		LEFT JOIN vehicles v ON t.vehicle_id = v.id
		WHERE t.id = ?`, id).
		Scan(&t.ID, &t.UserID, &t.DriverID, &t.VehicleID,
			&t.PickupLocation, &t.DropoffLocation, &t.Status,
			&t.BookingTime, &t.PickupTime, &t.DropoffTime,
			&distance, &fare,
			&t.UserName, &t.DriverName, &t.VehicleNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	t.Distance = nullFloatPtr(distance)
	t.Fare = nullFloatPtr(fare)
	return t, err
}

// Create inserts a new request in Pending with no driver or vehicle.
func (r TripRepository) Create(userID int64, pickup, dropoff string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (user_id, pickup_location, dropoff_location, status)
		VALUES (?, ?, ?, 'Pending')`,
		userID, pickup, dropoff)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) ListPending() ([]models.PendingTrip, error) {
	rows, err := r.db().Query(`
		SELECT t.id, CONCAT(u.first_name, ' ', u.last_name), u.phone,
		       t.pickup_location, t.dropoff_location, COALESCE(t.booking_time, '')
		FROM trips t
		JOIN users u ON t.user_id = u.id
		WHERE t.status = 'Pending'
		ORDER BY t.booking_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PendingTrip{}
	for rows.Next() {
		var p models.PendingTrip
		if err := rows.Scan(&p.ID, &p.UserName, &p.UserPhone,
			&p.PickupLocation, &p.DropoffLocation, &p.BookingTime); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Assign binds a driver and vehicle to a Pending trip in one transaction.
// The trip, driver and vehicle rows are locked and re-checked so two
// operators cannot claim the same driver or vehicle for different trips.
func (r TripRepository) Assign(tripID, driverID, vehicleID int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRow(`SELECT status FROM trips WHERE id = ? FOR UPDATE`, tripID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return err
	}
	if status != string(domain.TripPending) {
		return domain.ConflictError{Resource: "trip", Msg: "trip is not pending"}
	}

	var claimed int64
	err = tx.QueryRow(`
		SELECT d.id FROM drivers d
		WHERE d.id = ? AND d.status = 'Active'
		  AND NOT EXISTS (
		      SELECT 1 FROM trips t
		      WHERE t.driver_id = d.id AND t.status IN ('Accepted', 'In_Progress')
		  )
		FOR UPDATE`, driverID).Scan(&claimed)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ConflictError{Resource: "driver", Msg: "driver is no longer available"}
	}
	if err != nil {
		return err
	}

	err = tx.QueryRow(`
		SELECT v.id FROM vehicles v
		WHERE v.id = ? AND v.status = 'Available'
		  AND NOT EXISTS (
		      SELECT 1 FROM trips t
		      WHERE t.vehicle_id = v.id AND t.status IN ('Accepted', 'In_Progress')
		  )
		FOR UPDATE`, vehicleID).Scan(&claimed)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ConflictError{Resource: "vehicle", Msg: "vehicle is no longer available"}
	}
	if err != nil {
		return err
	}

	res, err := tx.Exec(`
		UPDATE trips
		SET driver_id = ?, vehicle_id = ?, status = 'Accepted', pickup_time = NOW()
		WHERE id = ? AND status = 'Pending'`,
		driverID, vehicleID, tripID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ConflictError{Resource: "trip", Msg: "trip is not pending"}
	}

	return tx.Commit()
}

// Start moves an Accepted trip to In_Progress.
func (r TripRepository) Start(tripID int64) error {
	res, err := r.db().Exec(`
		UPDATE trips SET status = 'In_Progress'
		WHERE id = ? AND status = 'Accepted'`, tripID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.transitionConflict(tripID, "trip is not accepted")
	}
	return nil
}

// Complete records trip-close data. Only an Accepted or In_Progress trip
// can complete; the driver and vehicle free up implicitly because the
// availability queries stop excluding them.
func (r TripRepository) Complete(tripID int64, distance, fare float64) error {
	res, err := r.db().Exec(`
		UPDATE trips
		SET status = 'Completed', dropoff_time = NOW(), distance = ?, fare = ?
		WHERE id = ? AND status IN ('Accepted', 'In_Progress')`,
		distance, fare, tripID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.transitionConflict(tripID, "trip cannot be completed from its current status")
	}
	return nil
}

// Cancel moves any non-terminal trip to Cancelled.
func (r TripRepository) Cancel(tripID int64) error {
	res, err := r.db().Exec(`
		UPDATE trips SET status = 'Cancelled'
		WHERE id = ? AND status IN ('Pending', 'Accepted', 'In_Progress')`, tripID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.transitionConflict(tripID, "trip is already finished")
	}
	return nil
}

func (r TripRepository) Delete(tripID int64) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id = ?`, tripID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

// transitionConflict distinguishes "wrong state" from "no such trip" after a
// conditional update touched zero rows.
func (r TripRepository) transitionConflict(tripID int64, msg string) error {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM trips WHERE id = ?`, tripID).Scan(&n); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return domain.ConflictError{Resource: "trip", Msg: msg}
}

func nullFloatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
