// Package store is the in-process entity store shared by every engine.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/ayuu-te/studio-look/internal/models"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateID         = errors.New("record with this id already exists")
	ErrDuplicateShareToken = errors.New("share token already in use")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrReadOnly            = errors.New("write attempted in read transaction")
)

type selectionKey struct {
	projectID string
	photoID   string
}

// Store owns every record. All access goes through Read or Write, which hold
// a single RW lock for the duration of the callback.
type Store struct {
	mu sync.RWMutex

	users       map[string]models.User
	userOrder   []string
	userByEmail map[string]string

	projects       map[string]models.Project
	projectOrder   []string
	projectByToken map[string]string

	folders     map[string]models.Folder
	folderOrder []string

	photos     map[string]models.Photo
	photoOrder []string

	selections map[selectionKey]models.Selection

	comments     map[string]models.Comment
	commentOrder []string
}

// New creates an empty store
func New() *Store {
	return &Store{
		users:          make(map[string]models.User),
		userByEmail:    make(map[string]string),
		projects:       make(map[string]models.Project),
		projectByToken: make(map[string]string),
		folders:        make(map[string]models.Folder),
		photos:         make(map[string]models.Photo),
		selections:     make(map[selectionKey]models.Selection),
		comments:       make(map[string]models.Comment),
	}
}

// Read runs fn with shared access. Mutating methods on the Tx fail with ErrReadOnly.
func (s *Store) Read(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

// Write runs fn with exclusive access, so a lookup followed by a create or
// update inside fn is atomic with respect to every other caller.
func (s *Store) Write(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s, writable: true})
}
