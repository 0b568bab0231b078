package contact

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/okozak/contacts-api/model"
)

// ContactRepository is the owner-scoped persistence contract for contacts.
// Every method takes the owning user id, so a caller cannot reach another
// user's records even by direct id; absence and cross-owner access are both
// reported as a nil entity.
type ContactRepository interface {
	List(ctx context.Context, userID uint64, skip, limit int) ([]model.ContactEntity, error)
	Get(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error)
	Create(ctx context.Context, userID uint64, data *model.ContactEntity) (*model.ContactEntity, error)
	Update(ctx context.Context, userID, contactID uint64, data *model.ContactEntity) (*model.ContactEntity, error)
	Delete(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error)
	Search(ctx context.Context, userID uint64, skip, limit int, filter *model.ContactFilter) ([]model.ContactEntity, error)
	UpcomingBirthdays(ctx context.Context, userID uint64, window model.BirthdayWindow) ([]model.ContactEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	selectContactBase  = `SELECT id, firstname, lastname, email, phone, birthday, user_id, created_at FROM contacts`
	insertContactQuery = `INSERT INTO contacts (firstname, lastname, email, phone, birthday, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	updateContactQuery = `UPDATE contacts SET firstname = ?, lastname = ?, email = ?, phone = ?, birthday = ? WHERE id = ? AND user_id = ?`
	deleteContactQuery = `DELETE FROM contacts WHERE id = ? AND user_id = ?`
)

func (s *SQL) List(ctx context.Context, userID uint64, skip, limit int) ([]model.ContactEntity, error) {
	query := selectContactBase + ` WHERE user_id = ? ORDER BY id LIMIT ? OFFSET ?`

	contacts := make([]model.ContactEntity, 0)
	if err := s.conn.SelectContext(ctx, &contacts, query, userID, limit, skip); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *SQL) Get(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error) {
	query := selectContactBase + ` WHERE id = ? AND user_id = ?`

	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, query, contactID, userID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, userID uint64, data *model.ContactEntity) (*model.ContactEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertContactQuery,
		data.Firstname, data.Lastname, data.Email, data.Phone, data.Birthday, userID)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	data.UserID = userID
	return data, nil
}

// Update replaces all five contact fields in one statement and returns the
// stored row, read back inside the same transaction. An id that does not
// exist under this user yields a nil entity, never an implicit insert.
func (s *SQL) Update(ctx context.Context, userID, contactID uint64, data *model.ContactEntity) (*model.ContactEntity, error) {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, updateContactQuery,
		data.Firstname, data.Lastname, data.Email, data.Phone, data.Birthday, contactID, userID)
	if err != nil {
		return nil, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		// The row may exist with identical values; MySQL then reports zero
		// affected rows. Distinguish that from true absence.
		var exists uint64
		err = tx.QueryRowxContext(ctx, `SELECT id FROM contacts WHERE id = ? AND user_id = ?`, contactID, userID).Scan(&exists)
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
	}

	var entity model.ContactEntity
	if err := tx.QueryRowxContext(ctx, selectContactBase+` WHERE id = ? AND user_id = ?`, contactID, userID).StructScan(&entity); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &entity, nil
}

// Delete removes the contact and returns its prior state, or a nil entity
// when the id does not resolve under this user.
func (s *SQL) Delete(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error) {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var entity model.ContactEntity
	if err := tx.QueryRowxContext(ctx, selectContactBase+` WHERE id = ? AND user_id = ?`, contactID, userID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, deleteContactQuery, contactID, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &entity, nil
}

// Search builds the WHERE clause from the present filters. Each filter is a
// case-insensitive substring match and all of them are ANDed together with
// the mandatory owner predicate. The caller guarantees at least one filter
// is set.
func (s *SQL) Search(ctx context.Context, userID uint64, skip, limit int, filter *model.ContactFilter) ([]model.ContactEntity, error) {
	query := selectContactBase + ` WHERE user_id = ?`
	args := make([]interface{}, 0, 6)
	args = append(args, userID)

	if filter.Firstname != "" {
		query += ` AND LOWER(firstname) LIKE ?`
		args = append(args, containsTerm(filter.Firstname))
	}
	if filter.Lastname != "" {
		query += ` AND LOWER(lastname) LIKE ?`
		args = append(args, containsTerm(filter.Lastname))
	}
	if filter.Email != "" {
		query += ` AND LOWER(email) LIKE ?`
		args = append(args, containsTerm(filter.Email))
	}

	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, limit, skip)

	contacts := make([]model.ContactEntity, 0)
	if err := s.conn.SelectContext(ctx, &contacts, query, args...); err != nil {
		return nil, err
	}
	return contacts, nil
}

// UpcomingBirthdays compares only the month and day of the birthday column
// against the window, so the birth year never excludes a contact. No
// pagination here; the window yields at most a handful of rows per user.
func (s *SQL) UpcomingBirthdays(ctx context.Context, userID uint64, window model.BirthdayWindow) ([]model.ContactEntity, error) {
	query := selectContactBase + ` WHERE user_id = ?`
	args := make([]interface{}, 0, 5)
	args = append(args, userID)

	if window.SameMonth() {
		query += ` AND MONTH(birthday) = ? AND DAY(birthday) >= ? AND DAY(birthday) <= ?`
		args = append(args, window.StartMonth, window.StartDay, window.EndDay)
	} else {
		query += ` AND ((MONTH(birthday) = ? AND DAY(birthday) >= ?) OR (MONTH(birthday) = ? AND DAY(birthday) <= ?))`
		args = append(args, window.StartMonth, window.StartDay, window.EndMonth, window.EndDay)
	}
	query += ` ORDER BY id`

	contacts := make([]model.ContactEntity, 0)
	if err := s.conn.SelectContext(ctx, &contacts, query, args...); err != nil {
		return nil, err
	}
	return contacts, nil
}

func containsTerm(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
