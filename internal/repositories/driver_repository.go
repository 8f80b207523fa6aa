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

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// DriverFilter narrows List; zero value returns every driver.
type DriverFilter struct {
	Statuses  []string
	MinRating float64
}

func (r DriverRepository) List(f DriverFilter) ([]models.Driver, error) {
	query := `
		SELECT d.id, d.first_name, d.last_name, d.phone, d.license_number,
		       d.rating, d.status, COALESCE(d.join_date, ''),
		       COALESCE(v.vehicle_number, ''), COALESCE(v.make, ''),
		       COALESCE(v.model, ''), COALESCE(v.vehicle_type, '')
		FROM drivers d
		LEFT JOIN vehicles v ON d.id = v.driver_id`

	where := []string{}
	args := []any{}
	if len(f.Statuses) > 0 {
		placeholders := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			placeholders[i] = "?"
			args = append(args, s)
		}
		where = append(where, "d.status IN ("+strings.Join(placeholders, ",")+")")
	}
	if f.MinRating > 0 {
		where = append(where, "d.rating >= ?")
		args = append(args, f.MinRating)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY d.join_date DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Phone, &d.LicenseNumber,
			&d.Rating, &d.Status, &d.JoinDate,
			&d.VehicleNumber, &d.VehicleMake, &d.VehicleModel, &d.VehicleType); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DriverRepository) GetByID(id int64) (models.Driver, error) {
	var d models.Driver
	err := r.db().QueryRow(`
		SELECT id, first_name, last_name, phone, license_number,
		       rating, status, COALESCE(join_date, '')
		FROM drivers WHERE id = ?`, id).
		Scan(&d.ID, &d.FirstName, &d.LastName, &d.Phone, &d.LicenseNumber,
			&d.Rating, &d.Status, &d.JoinDate)
	if errors.Is(err, sql.ErrNoRows) {
		return d, domain.NotFoundError{Resource: "driver"}
	}
	return d, err
}

func (r DriverRepository) Create(d models.Driver) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO drivers (first_name, last_name, phone, license_number, rating, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.FirstName, d.LastName, d.Phone, d.LicenseNumber, d.Rating, d.Status)
	if err != nil {
		if intdb.IsDuplicateEntry(err) {
			return 0, domain.ConflictError{Resource: "driver", Msg: "phone or license already registered", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r DriverRepository) Update(id int64, d models.Driver) error {
	res, err := r.db().Exec(`
		UPDATE drivers
		SET first_name = ?, last_name = ?, phone = ?, license_number = ?, rating = ?, status = ?
		WHERE id = ?`,
		d.FirstName, d.LastName, d.Phone, d.LicenseNumber, d.Rating, d.Status, id)
	if err != nil {
		if intdb.IsDuplicateEntry(err) {
			return domain.ConflictError{Resource: "driver", Msg: "phone or license already registered", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

func (r DriverRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		if intdb.IsForeignKeyViolation(err) {
			return domain.ConflictError{Resource: "driver", Msg: "driver is referenced by vehicles or trips", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}

// ListAvailable returns Active drivers not tied to any trip in an active
// state, best rated first. Point-in-time snapshot; assignment re-checks
// inside its transaction.
func (r DriverRepository) ListAvailable() ([]models.AvailableDriver, error) {
	rows, err := r.db().Query(`
		SELECT d.id, CONCAT(d.first_name, ' ', d.last_name, ' - ', d.phone)
		FROM drivers d
		WHERE d.status = 'Active'
		  AND d.id NOT IN (
		      SELECT driver_id FROM trips
		      WHERE status IN ('Accepted', 'In_Progress') AND driver_id IS NOT NULL
		  )
		ORDER BY d.rating DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.AvailableDriver{}
	for rows.Next() {
		var d models.AvailableDriver
		if err := rows.Scan(&d.ID, &d.Info); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
