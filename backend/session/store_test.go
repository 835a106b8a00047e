package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"edubridge/backend/identity"
	"edubridge/backend/kvstore"
	"edubridge/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *kvstore.Memory) {
	kv := kvstore.NewMemory()
	return NewStore(kv, identity.NewMock(0)), kv
}

func TestLoginSeedsStudentFixture(t *testing.T) {
	store, _ := newTestStore()

	user, err := store.Login(context.Background(), "ada@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "ada", user.Name)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.True(t, user.EnrolledCourses.Equal(models.NewIDSet("1")))
	assert.Equal(t, 0, user.CompletedLessons.Len())
	assert.Nil(t, user.Teaching)
}

func TestLoginSeedsTeacherFixture(t *testing.T) {
	store, _ := newTestStore()

	user, err := store.Login(context.Background(), "amina@example.com", "pw", models.RoleTeacher)
	require.NoError(t, err)

	assert.Equal(t, 0, user.EnrolledCourses.Len())
	require.NotNil(t, user.Teaching)
	assert.True(t, user.Teaching.CreatedCourses.Equal(models.NewIDSet("1", "2")))
}

func TestLoginReplacesPriorSession(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	_, err := store.Login(ctx, "first@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, store.CompleteLesson(ctx, "1-1"))

	_, err = store.Login(ctx, "second@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "second", current.Name)
	assert.Equal(t, 0, current.CompletedLessons.Len())
}

func TestSignupStartsEmptyForBothRoles(t *testing.T) {
	store, _ := newTestStore()

	student, err := store.Signup(context.Background(), "Ada", "ada@example.com", "longpassword", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, 0, student.EnrolledCourses.Len())
	assert.Equal(t, 0, student.CompletedLessons.Len())
	assert.Nil(t, student.Teaching)

	// unlike login, teacher signups are not pre-seeded
	teacher, err := store.Signup(context.Background(), "Amina", "amina@example.com", "longpassword", models.RoleTeacher)
	require.NoError(t, err)
	require.NotNil(t, teacher.Teaching)
	assert.Equal(t, 0, teacher.Teaching.CreatedCourses.Len())
	assert.NotEqual(t, student.ID, teacher.ID)
}

func TestSignupIDsAreUnique(t *testing.T) {
	store, _ := newTestStore()

	a, err := store.Signup(context.Background(), "A", "a@example.com", "longpassword", models.RoleStudent)
	require.NoError(t, err)
	b, err := store.Signup(context.Background(), "B", "b@example.com", "longpassword", models.RoleStudent)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestEnrollIsIdempotent(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, err := store.Login(ctx, "ada@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)

	require.NoError(t, store.EnrollInCourse(ctx, "2"))
	require.NoError(t, store.EnrollInCourse(ctx, "2"))

	user, ok := store.Current()
	require.True(t, ok)
	assert.True(t, user.EnrolledCourses.Equal(models.NewIDSet("1", "2")))
}

func TestCompleteLessonIsIdempotent(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, err := store.Login(ctx, "ada@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)

	require.NoError(t, store.CompleteLesson(ctx, "1-1"))
	require.NoError(t, store.CompleteLesson(ctx, "1-1"))

	user, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, 1, user.CompletedLessons.Len())
}

func TestCompletionDoesNotRequireEnrollment(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, err := store.Login(ctx, "ada@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)

	require.NoError(t, store.CompleteLesson(ctx, "4-1"))

	user, _ := store.Current()
	assert.True(t, user.CompletedLessons.Has("4-1"))
	assert.False(t, user.EnrolledCourses.Has("4"))
}

func TestMutatorsAreNoOpsWithoutSession(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	assert.NoError(t, store.EnrollInCourse(ctx, "1"))
	assert.NoError(t, store.CompleteLesson(ctx, "1-1"))

	_, ok := store.Current()
	assert.False(t, ok)
	_, err := kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestPersistedRecordRoundTrips(t *testing.T) {
	kv := kvstore.NewMemory()
	store := NewStore(kv, identity.NewMock(0))
	ctx := context.Background()

	_, err := store.Login(ctx, "ada@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, store.EnrollInCourse(ctx, "2"))
	require.NoError(t, store.CompleteLesson(ctx, "1-1"))
	before, _ := store.Current()

	reloaded := NewStore(kv, identity.NewMock(0))
	require.NoError(t, reloaded.Restore(ctx))

	after, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.Role, after.Role)
	assert.True(t, before.EnrolledCourses.Equal(after.EnrolledCourses))
	assert.True(t, before.CompletedLessons.Equal(after.CompletedLessons))
}

func TestRestoreWithoutRecord(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.Restore(context.Background()))

	_, ok := store.Current()
	assert.False(t, ok)
}

func TestRestoreDiscardsCorruptRecord(t *testing.T) {
	kv := kvstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte("{not json")))

	store := NewStore(kv, identity.NewMock(0))
	err := store.Restore(ctx)
	assert.Error(t, err)

	_, ok := store.Current()
	assert.False(t, ok)
}

func TestLogoutClearsSessionAndRecord(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()
	_, err := store.Login(ctx, "ada@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)

	require.NoError(t, store.Logout(ctx))
	_, ok := store.Current()
	assert.False(t, ok)
	_, err = kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	// idempotent
	assert.NoError(t, store.Logout(ctx))
}

func TestCancelledLoginLeavesSessionUntouched(t *testing.T) {
	kv := kvstore.NewMemory()
	store := NewStore(kv, identity.NewMock(50*time.Millisecond))
	ctx := context.Background()

	_, err := store.Login(ctx, "first@example.com", "pw", models.RoleStudent)
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.Login(cancelled, "second@example.com", "pw", models.RoleStudent)
	assert.ErrorIs(t, err, context.Canceled)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "first", current.Name)
}

func TestRejectedLoginLeavesSessionUntouched(t *testing.T) {
	id := identity.NewMock(0)
	store := NewStore(kvstore.NewMemory(), id)
	ctx := context.Background()

	_, err := store.Signup(ctx, "Ada", "ada@example.com", "rightpassword", models.RoleStudent)
	require.NoError(t, err)

	_, err = store.Login(ctx, "ada@example.com", "wrongpassword", models.RoleStudent)
	var authErr *identity.AuthError
	assert.ErrorAs(t, err, &authErr)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "Ada", current.Name)
}

func TestLoginRejectsInvalidRole(t *testing.T) {
	store, _ := newTestStore()
	_, err := store.Login(context.Background(), "x@example.com", "pw", models.Role("admin"))
	assert.Error(t, err)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("store down")
}
func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("store down")
}
func (failingStore) Delete(context.Context, string) error {
	return errors.New("store down")
}

func TestPersistenceFailureLeavesStateUnchanged(t *testing.T) {
	store := NewStore(failingStore{}, identity.NewMock(0))

	_, err := store.Login(context.Background(), "ada@example.com", "pw", models.RoleStudent)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)

	_, ok := store.Current()
	assert.False(t, ok)
}

func TestPersistedWireFormat(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()
	_, err := store.Login(ctx, "amina@example.com", "pw", models.RoleTeacher)
	require.NoError(t, err)

	data, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "1", raw["id"])
	assert.Equal(t, "amina", raw["name"])
	assert.Equal(t, "teacher", raw["role"])
	assert.Equal(t, []interface{}{"1", "2"}, raw["createdCourses"])
}
