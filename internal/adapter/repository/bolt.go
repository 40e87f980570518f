package repository

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"shreeanna/pkg/errors"
)

var (
	bucketUsers        = []byte("users")
	bucketProfiles     = []byte("userProfiles")
	bucketCrops        = []byte("crops")
	bucketProducts     = []byte("products")
	bucketOrders       = []byte("orders")
	bucketTransport    = []byte("transportRequests")
	bucketDeliveries   = []byte("deliveries")
	bucketNotification = []byte("notifications")
	bucketChats        = []byte("chats")
	bucketCarts        = []byte("carts")
	bucketFavorites    = []byte("favoriteFarmers")
	bucketPartnerships = []byte("partnerships")
	bucketRawMaterials = []byte("rawMaterialRequests")
	bucketContacts     = []byte("contactMessages")
)

var allBuckets = [][]byte{
	bucketUsers, bucketProfiles, bucketCrops, bucketProducts, bucketOrders,
	bucketTransport, bucketDeliveries, bucketNotification, bucketChats,
	bucketCarts, bucketFavorites, bucketPartnerships, bucketRawMaterials,
	bucketContacts,
}

// Store wraps the bbolt database holding every platform collection, one
// bucket per collection with JSON documents keyed by entity id. Mutations run
// inside bbolt write transactions, so concurrent writers cannot lose updates.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Internal("Failed to open database", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, errors.Internal("Failed to initialize database buckets", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Reset drops and recreates every bucket. Used by the admin platform reset.
func (s *Store) Reset() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if err := tx.DeleteBucket(name); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Internal("Failed to reset database", err)
	}
	return nil
}

func put(tx *bolt.Tx, bucket []byte, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return tx.Bucket(bucket).Put([]byte(key), data)
}

// getInto reports whether the key existed; a malformed stored document is an
// error rather than a silent miss.
func getInto(tx *bolt.Tx, bucket []byte, key string, v interface{}) (bool, error) {
	data := tx.Bucket(bucket).Get([]byte(key))
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func forEach(tx *bolt.Tx, bucket []byte, fn func(v []byte) error) error {
	return tx.Bucket(bucket).ForEach(func(_, v []byte) error {
		return fn(v)
	})
}
