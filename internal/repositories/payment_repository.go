package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "cabadmin/internal/config"
	intdb "cabadmin/internal/db"
	"cabadmin/internal/domain"
	"cabadmin/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// PaymentFilter narrows List; zero value returns every payment.
type PaymentFilter struct {
	Statuses []string
	Modes    []string
}

func (r PaymentRepository) List(f PaymentFilter) ([]models.Payment, error) {
	query := `
		SELECT p.id, p.trip_id, p.amount, p.payment_mode, p.payment_status,
		       COALESCE(p.reference_number, ''), COALESCE(p.payment_datetime, ''),
		       COALESCE(CONCAT(u.first_name, ' ', u.last_name), ''),
		       t.fare
		FROM payments p
		JOIN trips t ON p.trip_id = t.id
		LEFT JOIN users u ON t.user_id = u.id`

	where := []string{}
	args := []any{}
	if len(f.Statuses) > 0 {
		placeholders := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			placeholders[i] = "?"
			args = append(args, s)
		}
		where = append(where, "p.payment_status IN ("+strings.Join(placeholders, ",")+")")
	}
	if len(f.Modes) > 0 {
		placeholders := make([]string, len(f.Modes))
		for i, m := range f.Modes {
			placeholders[i] = "?"
			args = append(args, m)
		}
		where = append(where, "p.payment_mode IN ("+strings.Join(placeholders, ",")+")")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.payment_datetime DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		var fare sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.TripID, &p.Amount, &p.PaymentMode, &p.PaymentStatus,
			&p.ReferenceNumber, &p.PaymentDateTime, &p.UserName, &fare); err != nil {
			return nil, err
		}
		p.TripFare = intdb.NullFloatPtr(fare)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PaymentRepository) GetByID(id int64) (models.Payment, error) {
	var p models.Payment
	err := r.db().QueryRow(`
		SELECT id, trip_id, amount, payment_mode, payment_status,
		       COALESCE(reference_number, ''), COALESCE(payment_datetime, '')
		FROM payments WHERE id = ?`, id).
		Scan(&p.ID, &p.TripID, &p.Amount, &p.PaymentMode, &p.PaymentStatus,
			&p.ReferenceNumber, &p.PaymentDateTime)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.NotFoundError{Resource: "payment"}
	}
	return p, err
}

// GetLatestByTripID returns the most recent payment attached to a trip,
// or sql.ErrNoRows wrapped as not-found when the trip has none.
func (r PaymentRepository) GetLatestByTripID(tripID int64) (models.Payment, error) {
	var p models.Payment
	err := r.db().QueryRow(`
		SELECT id, trip_id, amount, payment_mode, payment_status,
		       COALESCE(reference_number, ''), COALESCE(payment_datetime, '')
		FROM payments
		WHERE trip_id = ?
		ORDER BY payment_datetime DESC, id DESC
		LIMIT 1`, tripID).
		Scan(&p.ID, &p.TripID, &p.Amount, &p.PaymentMode, &p.PaymentStatus,
			&p.ReferenceNumber, &p.PaymentDateTime)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.NotFoundError{Resource: "payment"}
	}
	return p, err
}

func (r PaymentRepository) Create(p models.Payment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payments (trip_id, amount, payment_mode, payment_status, reference_number)
		VALUES (?, ?, ?, ?, ?)`,
		p.TripID, p.Amount, p.PaymentMode, p.PaymentStatus, intdb.NullIfEmpty(p.ReferenceNumber))
	if err != nil {
		if intdb.IsForeignKeyViolation(err) {
			return 0, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateStatus sets the payment status and optional reference number,
// restamping payment_datetime the way the settlement screen expects.
func (r PaymentRepository) UpdateStatus(id int64, status, reference string) error {
	res, err := r.db().Exec(`
		UPDATE payments
		SET payment_status = ?, reference_number = ?, payment_datetime = NOW()
		WHERE id = ?`,
		status, intdb.NullIfEmpty(reference), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

func (r PaymentRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payment"}
	}
	return nil
}

// ListUnpaidTrips returns completed trips that have no payment row yet.
// Derived view only; nothing stops a second payment on the same trip.
func (r PaymentRepository) ListUnpaidTrips() ([]models.UnpaidTrip, error) {
	rows, err := r.db().Query(`
		SELECT t.id,
		       CONCAT('Trip #', t.id, ' - ', u.first_name, ' ', u.last_name,
		              ' (Rs ', COALESCE(t.fare, 0), ')')
		FROM trips t
		LEFT JOIN payments p ON t.id = p.trip_id
		LEFT JOIN users u ON t.user_id = u.id
		WHERE t.status = 'Completed' AND p.id IS NULL
		ORDER BY t.dropoff_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.UnpaidTrip{}
	for rows.Next() {
		var t models.UnpaidTrip
		if err := rows.Scan(&t.ID, &t.Info); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
