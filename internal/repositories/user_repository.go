package repositories

import (
	"database/sql"
	"errors"

	intconfig "cabadmin/internal/config"
	intdb "cabadmin/internal/db"
	"cabadmin/internal/domain"
	"cabadmin/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// UserSearch narrows List to one column; empty Term returns everything.
type UserSearch struct {
	Term string
	By   string // "name", "phone" or "email"
}

func (r UserRepository) List(search UserSearch) ([]models.User, error) {
	query := `
		SELECT id, first_name, last_name, phone, email,
		       COALESCE(registration_date, ''), COALESCE(last_login, '')
		FROM users`
	args := []any{}

	if search.Term != "" {
		like := "%" + search.Term + "%"
		switch search.By {
		case "phone":
			query += ` WHERE phone LIKE ?`
			args = append(args, like)
		case "email":
			query += ` WHERE email LIKE ?`
			args = append(args, like)
		default:
			query += ` WHERE first_name LIKE ? OR last_name LIKE ?`
			args = append(args, like, like)
		}
	}
	query += ` ORDER BY registration_date DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Phone, &u.Email,
			&u.RegistrationDate, &u.LastLogin); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, first_name, last_name, phone, email,
		       COALESCE(registration_date, ''), COALESCE(last_login, '')
		FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Phone, &u.Email,
			&u.RegistrationDate, &u.LastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

func (r UserRepository) Exists(id int64) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE id = ?`, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r UserRepository) Create(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (first_name, last_name, phone, email)
		VALUES (?, ?, ?, ?)`,
		u.FirstName, u.LastName, u.Phone, u.Email)
	if err != nil {
		if intdb.IsDuplicateEntry(err) {
			return 0, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) Update(id int64, u models.User) error {
	res, err := r.db().Exec(`
		UPDATE users
		SET first_name = ?, last_name = ?, phone = ?, email = ?
		WHERE id = ?`,
		u.FirstName, u.LastName, u.Phone, u.Email, id)
	if err != nil {
		if intdb.IsDuplicateEntry(err) {
			return domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if ok, err := r.Exists(id); err == nil && !ok {
			return domain.NotFoundError{Resource: "user"}
		}
	}
	return nil
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		if intdb.IsForeignKeyViolation(err) {
			return domain.ConflictError{Resource: "user", Msg: "user has trips on record", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
