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

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// VehicleFilter narrows List; zero value returns every vehicle.
type VehicleFilter struct {
	Statuses []string
	Types    []string
}

func (r VehicleRepository) List(f VehicleFilter) ([]models.Vehicle, error) {
	query := `
		SELECT v.id, COALESCE(v.driver_id, 0), v.vehicle_type, v.vehicle_number,
		       v.make, v.model, v.year, v.status,
		       COALESCE(v.registration_date, ''), COALESCE(v.assignment_date, ''),
		       vt.standard_capacity,
		       COALESCE(CONCAT(d.first_name, ' ', d.last_name), ''),
		       COALESCE(d.phone, '')
		FROM vehicles v
		JOIN vehicle_types vt ON v.vehicle_type = vt.vehicle_type
		LEFT JOIN drivers d ON v.driver_id = d.id`

	where := []string{}
	args := []any{}
	if len(f.Statuses) > 0 {
		placeholders := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			placeholders[i] = "?"
			args = append(args, s)
		}
		where = append(where, "v.status IN ("+strings.Join(placeholders, ",")+")")
	}
	if len(f.Types) > 0 {
		placeholders := make([]string, len(f.Types))
		for i, t := range f.Types {
			placeholders[i] = "?"
			args = append(args, t)
		}
		where = append(where, "v.vehicle_type IN ("+strings.Join(placeholders, ",")+")")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY v.registration_date DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.DriverID, &v.VehicleType, &v.VehicleNumber,
			&v.Make, &v.Model, &v.Year, &v.Status,
			&v.RegistrationDate, &v.AssignmentDate,
			&v.StandardCapacity, &v.DriverName, &v.DriverPhone); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	var v models.Vehicle
	err := r.db().QueryRow(`
		SELECT id, COALESCE(driver_id, 0), vehicle_type, vehicle_number,
		       make, model, year, status,
		       COALESCE(registration_date, ''), COALESCE(assignment_date, '')
		FROM vehicles WHERE id = ?`, id).
		Scan(&v.ID, &v.DriverID, &v.VehicleType, &v.VehicleNumber,
			&v.Make, &v.Model, &v.Year, &v.Status,
			&v.RegistrationDate, &v.AssignmentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return v, domain.NotFoundError{Resource: "vehicle"}
	}
	return v, err
}

func (r VehicleRepository) Create(v models.Vehicle) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles (driver_id, vehicle_type, vehicle_number, make, model, year, status, assignment_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`,
		intdb.NullIfZero(v.DriverID), v.VehicleType, v.VehicleNumber,
		v.Make, v.Model, v.Year, v.Status)
	if err != nil {
		if intdb.IsDuplicateEntry(err) {
			return 0, domain.ConflictError{Resource: "vehicle", Msg: "vehicle number already registered", Err: err}
		}
		if intdb.IsForeignKeyViolation(err) {
			return 0, domain.ConflictError{Resource: "vehicle", Msg: "driver or vehicle type does not exist", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r VehicleRepository) Update(id int64, v models.Vehicle) error {
	res, err := r.db().Exec(`
		UPDATE vehicles
		SET driver_id = ?, vehicle_type = ?, vehicle_number = ?,
		    make = ?, model = ?, year = ?, status = ?
		WHERE id = ?`,
		intdb.NullIfZero(v.DriverID), v.VehicleType, v.VehicleNumber,
		v.Make, v.Model, v.Year, v.Status, id)
	if err != nil {
		if intdb.IsDuplicateEntry(err) {
			return domain.ConflictError{Resource: "vehicle", Msg: "vehicle number already registered", Err: err}
		}
		if intdb.IsForeignKeyViolation(err) {
			return domain.ConflictError{Resource: "vehicle", Msg: "driver or vehicle type does not exist", Err: err}
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

func (r VehicleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		if intdb.IsForeignKeyViolation(err) {
			return domain.ConflictError{Resource: "vehicle", Msg: "vehicle is referenced by trips", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

// ListAvailable returns Available vehicles not tied to any trip in an active
// state, grouped by type for the assignment picker.
func (r VehicleRepository) ListAvailable() ([]models.AvailableVehicle, error) {
	rows, err := r.db().Query(`
		SELECT v.id,
		       CONCAT(v.vehicle_number, ' - ', v.make, ' ', v.model, ' (', vt.vehicle_type, ')')
		FROM vehicles v
		JOIN vehicle_types vt ON v.vehicle_type = vt.vehicle_type
		WHERE v.status = 'Available'
		  AND v.id NOT IN (
		      SELECT vehicle_id FROM trips
		      WHERE status IN ('Accepted', 'In_Progress') AND vehicle_id IS NOT NULL
		  )
		ORDER BY vt.vehicle_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.AvailableVehicle{}
	for rows.Next() {
		var v models.AvailableVehicle
		if err := rows.Scan(&v.ID, &v.Info); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleRepository) ListTypes() ([]models.VehicleType, error) {
	rows, err := r.db().Query(`
		SELECT vehicle_type, standard_capacity, base_fare_per_km
		FROM vehicle_types
		ORDER BY vehicle_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VehicleType{}
	for rows.Next() {
		var vt models.VehicleType
		if err := rows.Scan(&vt.VehicleType, &vt.StandardCapacity, &vt.BaseFarePerKm); err != nil {
			return nil, err
		}
		out = append(out, vt)
	}
	return out, rows.Err()
}
