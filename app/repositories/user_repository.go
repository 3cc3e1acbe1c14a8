package repositories

import (
	"fmt"
	"strings"

	"smriti/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

func usernameIndexKey(username string) []byte {
	return []byte(UsernameIndexPrefix + username)
}

func emailIndexKey(email string) []byte {
	return []byte(EmailIndexPrefix + strings.ToLower(email))
}

// Create creates a new user. Username and email uniqueness are enforced
// inside the transaction via secondary indexes.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(usernameIndexKey(user.Username)); err == nil {
			return ErrDuplicateUsername
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		if user.Email != "" {
			if _, err := txn.Get(emailIndexKey(user.Email)); err == nil {
				return ErrDuplicateEmail
			} else if err != badger.ErrKeyNotFound {
				return err
			}
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))
		if err := txn.Set(key, data); err != nil {
			return err
		}

		idValue := []byte(fmt.Sprintf("%d", user.ID))
		if err := txn.Set(usernameIndexKey(user.Username), idValue); err != nil {
			return err
		}
		if user.Email != "" {
			if err := txn.Set(emailIndexKey(user.Email), idValue); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user through the username index
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		id, err := readIndex(txn, string(usernameIndexKey(username)))
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user through the email index
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		id, err := readIndex(txn, string(emailIndexKey(email)))
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates an existing user, keeping the secondary indexes in sync
func (r *BadgerUserRepository) Update(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.User
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		}); err != nil {
			return err
		}

		if existing.Username != user.Username {
			if _, err := txn.Get(usernameIndexKey(user.Username)); err == nil {
				return ErrDuplicateUsername
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(usernameIndexKey(existing.Username)); err != nil {
				return err
			}
		}
		if existing.Email != user.Email {
			if user.Email != "" {
				if _, err := txn.Get(emailIndexKey(user.Email)); err == nil {
					return ErrDuplicateEmail
				} else if err != badger.ErrKeyNotFound {
					return err
				}
			}
			if existing.Email != "" {
				if err := txn.Delete(emailIndexKey(existing.Email)); err != nil {
					return err
				}
			}
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}

		idValue := []byte(fmt.Sprintf("%d", user.ID))
		if err := txn.Set(usernameIndexKey(user.Username), idValue); err != nil {
			return err
		}
		if user.Email != "" {
			if err := txn.Set(emailIndexKey(user.Email), idValue); err != nil {
				return err
			}
		}
		return nil
	})
}
