package store

import (
	"encoding/binary"
	"fmt"

	bolt "go.etcd.io/bbolt"
	. "src.ked.sh/pkg/store/storedefs"
)

func init() {
	initDB["initialize cursor position table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPos))
		return err
	}
}

// SetPos records the cursor position in a file. The path should be absolute.
func (s *dbStore) SetPos(path string, pos Pos) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPos)).Put([]byte(path), marshalPos(pos))
	})
}

// Pos returns the recorded cursor position in a file, or ErrNoPos.
func (s *dbStore) Pos(path string) (Pos, error) {
	var pos Pos
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketPos)).Get([]byte(path))
		if v == nil {
			return ErrNoPos
		}
		var err error
		pos, err = unmarshalPos(v)
		return err
	})
	return pos, err
}

func marshalPos(pos Pos) []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b, uint64(pos.Row))
	binary.BigEndian.PutUint64(b[8:], uint64(pos.Col))
	return b
}

func unmarshalPos(b []byte) (Pos, error) {
	if len(b) != 16 {
		return Pos{}, fmt.Errorf("bad position record of %d bytes", len(b))
	}
	return Pos{
		Row: int(binary.BigEndian.Uint64(b)),
		Col: int(binary.BigEndian.Uint64(b[8:])),
	}, nil
}
