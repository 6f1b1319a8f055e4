package store

import (
	"bytes"
	"encoding/binary"

	bolt "go.etcd.io/bbolt"
	. "src.ked.sh/pkg/store/storedefs"
)

// Command lines live in bucketCmd, keyed by their sequence number as a
// big-endian uint64 so that cursor order is history order.

func init() {
	initDB["create command history bucket"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	}
}

func cmdBucket(tx *bolt.Tx) *bolt.Bucket { return tx.Bucket([]byte(bucketCmd)) }

func seqKey(seq int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(seq))
	return k
}

func keySeq(k []byte) int { return int(binary.BigEndian.Uint64(k)) }

func (s *dbStore) NextCmdSeq() (int, error) {
	var seq int
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = int(cmdBucket(tx).Sequence()) + 1
		return nil
	})
	return seq, err
}

// AddCmd appends a command line to the history and returns its sequence
// number. A command line equal to the newest entry is not stored again; the
// sequence number of that entry is returned instead.
func (s *dbStore) AddCmd(text string) (int, error) {
	var seq int
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := cmdBucket(tx)
		if k, v := b.Cursor().Last(); k != nil && string(v) == text {
			seq = keySeq(k)
			return nil
		}
		next, err := b.NextSequence()
		if err != nil {
			return err
		}
		seq = int(next)
		return b.Put(seqKey(seq), []byte(text))
	})
	return seq, err
}

func (s *dbStore) Cmd(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := cmdBucket(tx).Get(seqKey(seq))
		if v == nil {
			return ErrNoMatchingCmd
		}
		text = string(v)
		return nil
	})
	return text, err
}

// CmdsWithSeq returns the command lines with sequence numbers in [from, upto).
func (s *dbStore) CmdsWithSeq(from, upto int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := cmdBucket(tx).Cursor()
		for k, v := c.Seek(seqKey(from)); k != nil && keySeq(k) < upto; k, v = c.Next() {
			cmds = append(cmds, Cmd{Text: string(v), Seq: keySeq(k)})
		}
		return nil
	})
	return cmds, err
}

// NextCmd finds the oldest command line with the prefix whose sequence number
// is at least from.
func (s *dbStore) NextCmd(from int, prefix string) (Cmd, error) {
	var cmd Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := cmdBucket(tx).Cursor()
		k, v := c.Seek(seqKey(from))
		return scanCmds(&cmd, k, v, c.Next, prefix)
	})
	return cmd, err
}

// PrevCmd finds the newest command line with the prefix whose sequence number
// is below upto.
func (s *dbStore) PrevCmd(upto int, prefix string) (Cmd, error) {
	var cmd Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := cmdBucket(tx).Cursor()
		var k, v []byte
		if k, _ = c.Seek(seqKey(upto)); k == nil {
			// Every entry is below upto.
			k, v = c.Last()
		} else {
			k, v = c.Prev()
		}
		return scanCmds(&cmd, k, v, c.Prev, prefix)
	})
	return cmd, err
}

// Walks the cursor with step from (k, v) until an entry has the prefix.
func scanCmds(cmd *Cmd, k, v []byte, step func() ([]byte, []byte), prefix string) error {
	p := []byte(prefix)
	for ; k != nil; k, v = step() {
		if bytes.HasPrefix(v, p) {
			*cmd = Cmd{Text: string(v), Seq: keySeq(k)}
			return nil
		}
	}
	return ErrNoMatchingCmd
}
