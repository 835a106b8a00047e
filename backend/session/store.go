// Package session owns the authoritative mutable user record and its
// persistence. All mutations write the full record under one fixed key
// before they return; absence of the key means no active session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"edubridge/backend/identity"
	"edubridge/backend/kvstore"
	"edubridge/backend/models"
)

// StorageKey is the single key the session record lives under.
const StorageKey = "edubridge_user"

// Demo fixtures seeded by Login. Signup deliberately seeds nothing; both
// behaviors are pinned by tests.
var (
	loginUserID             = "1"
	loginStudentEnrollments = []string{"1"}
	loginTeacherCourses     = []string{"1", "2"}
)

// PersistenceError reports that the durable store failed; the in-memory
// session is left unchanged when it is returned.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("session: persistence: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store is the single owned session container: created on login/signup,
// torn down on logout. A mutex serializes mutations so callers never observe
// a partially-applied record; concurrent writers are last-writer-wins.
type Store struct {
	kv kvstore.Store
	id identity.Service

	mu   sync.Mutex
	user *models.User
}

func NewStore(kv kvstore.Store, id identity.Service) *Store {
	return &Store{kv: kv, id: id}
}

// Restore loads a previously persisted session. A missing key means no
// session. A corrupt record is discarded rather than crashing the process;
// the returned error is informational and the store is usable either way.
func (s *Store) Restore(ctx context.Context) error {
	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		return &PersistenceError{Err: err}
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("session: discarding corrupt record: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Current returns a snapshot of the active session, or (nil, false) when
// there is none. The snapshot is a copy; mutate through the store.
func (s *Store) Current() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false
	}
	return s.user.Clone(), true
}

func displayName(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// Login authenticates against the identity collaborator and replaces any
// prior session with the demo-seeded record. Cancellation or rejection during
// the identity round trip leaves the existing session untouched.
func (s *Store) Login(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("session: invalid role %q", role)
	}
	if err := s.id.Authenticate(ctx, email, password, role); err != nil {
		return nil, err
	}

	var user *models.User
	if role == models.RoleTeacher {
		user = models.NewTeacher(loginUserID, displayName(email), email)
		user.Teaching.CreatedCourses = models.NewIDSet(loginTeacherCourses...)
	} else {
		user = models.NewStudent(loginUserID, displayName(email), email)
		user.EnrolledCourses = models.NewIDSet(loginStudentEnrollments...)
	}

	return s.install(ctx, user)
}

// Signup registers with the identity collaborator and starts a fresh session
// with all progress sets empty. Ids come from a collision-resistant generator.
func (s *Store) Signup(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("session: invalid role %q", role)
	}
	if err := s.id.Register(ctx, name, email, password, role); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	var user *models.User
	if role == models.RoleTeacher {
		user = models.NewTeacher(id, name, email)
	} else {
		user = models.NewStudent(id, name, email)
	}

	return s.install(ctx, user)
}

// install persists user and makes it the active session. Nothing changes if
// persistence fails.
func (s *Store) install(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(ctx, user); err != nil {
		return nil, err
	}
	s.user = user
	return user.Clone(), nil
}

func (s *Store) persistLocked(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// Logout clears the session and removes the persisted record. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.kv.Delete(ctx, StorageKey); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// EnrollInCourse adds courseID to the enrollment set. Re-enrolling is a
// no-op, as is calling without an active session.
func (s *Store) EnrollInCourse(ctx context.Context, courseID string) error {
	return s.mutate(ctx, func(u *models.User) bool {
		return u.EnrolledCourses.Add(courseID)
	})
}

// CompleteLesson adds lessonID to the completion set. Completion does not
// require enrollment in the lesson's course.
func (s *Store) CompleteLesson(ctx context.Context, lessonID string) error {
	return s.mutate(ctx, func(u *models.User) bool {
		return u.CompletedLessons.Add(lessonID)
	})
}

// mutate applies fn to a copy of the record, persists it, then commits it,
// so a persistence failure never leaves memory and disk disagreeing.
func (s *Store) mutate(ctx context.Context, fn func(*models.User) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	next := s.user.Clone()
	if !fn(next) {
		return nil
	}
	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}
	s.user = next
	return nil
}
