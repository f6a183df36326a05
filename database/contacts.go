package database

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"finques-lisa/models"
)

const contactColumns = `
	c.id, c.property_id, c.name, c.email, c.phone, c.message, c.contact_type, c.preferred_contact,
	c.is_read, c.responded_at, c.created_at, p.title, p.reference_code`

func scanContact(s rowScanner) (*models.Contact, error) {
	var c models.Contact
	err := s.Scan(
		&c.ID, &c.PropertyID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.ContactType, &c.PreferredContact,
		&c.IsRead, &c.RespondedAt, &c.CreatedAt, &c.PropertyTitle, &c.PropertyReference,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateContact stores a lead. A property reference that does not exist is a constraint error.
func (r *Repository) CreateContact(c *models.Contact) error {
	_, err := r.db.Exec(`
		INSERT INTO contacts (id, property_id, name, email, phone, message, contact_type,
			preferred_contact, is_read, responded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID, c.PropertyID, c.Name, c.Email, c.Phone, c.Message, string(c.ContactType),
		c.PreferredContact, boolInt(c.IsRead), c.RespondedAt, c.CreatedAt,
	)
	return mapError(err)
}

func (r *Repository) GetContact(id string) (*models.Contact, error) {
	row := r.db.QueryRow(`
		SELECT `+contactColumns+`
		FROM contacts c
		LEFT JOIN properties p ON c.property_id = p.id
		WHERE c.id = ?
	`, id)

	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// ListContacts returns contacts newest first, optionally filtered by read state and type.
func (r *Repository) ListContacts(filters models.ContactFilters) ([]models.Contact, error) {
	var where []string
	var args []any

	if filters.IsRead != nil {
		where = append(where, "c.is_read = ?")
		args = append(args, boolInt(*filters.IsRead))
	}
	if filterSet(filters.ContactType) {
		where = append(where, "c.contact_type = ?")
		args = append(args, filters.ContactType)
	}

	query := `SELECT ` + contactColumns + ` FROM contacts c LEFT JOIN properties p ON c.property_id = p.id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.created_at DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}

	return contacts, rows.Err()
}

// MarkContactRead sets is_read and stamps responded_at the first time only, so repeating it
// changes nothing. It reports false when the contact does not exist.
func (r *Repository) MarkContactRead(id string) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE contacts SET
			is_read = 1,
			responded_at = COALESCE(responded_at, ?)
		WHERE id = ?
	`, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
