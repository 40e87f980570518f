package repository

import (
	"context"
	"sort"
	"strings"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

// storedUser is the persisted form of a user. entity.User hides the password
// hash from JSON output, so the stored document carries it alongside.
type storedUser struct {
	*entity.User
	PasswordHash string `json:"password_hash"`
}

func encodeUser(user *entity.User) storedUser {
	return storedUser{User: user, PasswordHash: user.PasswordHash}
}

func decodeUser(data []byte) (*entity.User, error) {
	rec := storedUser{User: &entity.User{}}
	if err := unmarshal(data, &rec); err != nil {
		return nil, err
	}
	rec.User.PasswordHash = rec.PasswordHash
	return rec.User, nil
}

type boltUserRepository struct {
	store *Store
}

func NewBoltUserRepository(store *Store) repository.UserRepository {
	return &boltUserRepository{store: store}
}

func (r *boltUserRepository) Create(ctx context.Context, user *entity.User) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketUsers, user.ID, encodeUser(user))
	})
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *boltUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user *entity.User

	err := r.store.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketUsers).Get([]byte(id))
		if data == nil {
			return nil
		}
		var err error
		user, err = decodeUser(data)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *boltUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var match *entity.User

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketUsers, func(v []byte) error {
			user, err := decodeUser(v)
			if err != nil {
				return err
			}
			if strings.EqualFold(user.Email, email) {
				match = user
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to look up user by email", err)
	}
	if match == nil {
		return nil, errors.NotFound("User", nil)
	}
	return match, nil
}

func (r *boltUserRepository) Update(ctx context.Context, user *entity.User) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketUsers).Get([]byte(user.ID)) == nil {
			return errors.NotFound("User", nil)
		}
		return put(tx, bucketUsers, user.ID, encodeUser(user))
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}
	return nil
}

func (r *boltUserRepository) Delete(ctx context.Context, id string) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketUsers).Delete([]byte(id))
	})
	if err != nil {
		return errors.Internal("Failed to delete user", err)
	}
	return nil
}

func (r *boltUserRepository) List(ctx context.Context, role string) ([]*entity.User, error) {
	var users []*entity.User

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketUsers, func(v []byte) error {
			user, err := decodeUser(v)
			if err != nil {
				return err
			}
			if role == "" || user.Role == role {
				users = append(users, user)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list users", err)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}
