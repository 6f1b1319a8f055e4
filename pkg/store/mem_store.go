package store

import (
	"strings"
	"sync"

	. "src.ked.sh/pkg/store/storedefs"
)

// NewMemStore returns a Store that keeps everything in memory, for when the
// editor runs without a database. It is safe for concurrent use.
func NewMemStore() Store {
	return &memStore{pos: map[string]Pos{}}
}

type memStore struct {
	mu   sync.Mutex
	cmds []string
	pos  map[string]Pos
}

// Sequence numbers start from 1, like those of a bbolt bucket.

func (s *memStore) NextCmdSeq() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cmds) + 1, nil
}

func (s *memStore) AddCmd(text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.cmds); n > 0 && s.cmds[n-1] == text {
		return n, nil
	}
	s.cmds = append(s.cmds, text)
	return len(s.cmds), nil
}

func (s *memStore) Cmd(seq int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < 1 || seq > len(s.cmds) {
		return "", ErrNoMatchingCmd
	}
	return s.cmds[seq-1], nil
}

func (s *memStore) CmdsWithSeq(from, upto int) ([]Cmd, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cmds []Cmd
	for seq := max(from, 1); seq < upto && seq <= len(s.cmds); seq++ {
		cmds = append(cmds, Cmd{Text: s.cmds[seq-1], Seq: seq})
	}
	return cmds, nil
}

func (s *memStore) NextCmd(from int, prefix string) (Cmd, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for seq := max(from, 1); seq <= len(s.cmds); seq++ {
		if strings.HasPrefix(s.cmds[seq-1], prefix) {
			return Cmd{Text: s.cmds[seq-1], Seq: seq}, nil
		}
	}
	return Cmd{}, ErrNoMatchingCmd
}

func (s *memStore) PrevCmd(upto int, prefix string) (Cmd, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for seq := min(upto-1, len(s.cmds)); seq >= 1; seq-- {
		if strings.HasPrefix(s.cmds[seq-1], prefix) {
			return Cmd{Text: s.cmds[seq-1], Seq: seq}, nil
		}
	}
	return Cmd{}, ErrNoMatchingCmd
}

func (s *memStore) SetPos(path string, pos Pos) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos[path] = pos
	return nil
}

func (s *memStore) Pos(path string) (Pos, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.pos[path]
	if !ok {
		return Pos{}, ErrNoPos
	}
	return pos, nil
}
