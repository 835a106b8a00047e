package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRecordOmitsCreatedCourses(t *testing.T) {
	student := NewStudent("42", "Ada", "ada@example.com")
	student.EnrolledCourses.Add("1")

	data, err := json.Marshal(student)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "createdCourses")
	assert.Equal(t, "student", raw["role"])
}

func TestTeacherRecordCarriesCreatedCourses(t *testing.T) {
	teacher := NewTeacher("7", "Amina", "amina@example.com")
	teacher.Teaching.CreatedCourses.Add("1")
	teacher.Teaching.CreatedCourses.Add("2")

	data, err := json.Marshal(teacher)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []interface{}{"1", "2"}, raw["createdCourses"])
}

func TestUserJSONRoundTrip(t *testing.T) {
	teacher := NewTeacher("7", "Amina", "amina@example.com")
	teacher.Teaching.CreatedCourses.Add("2")
	teacher.EnrolledCourses.Add("1")
	teacher.CompletedLessons.Add("1-1")

	data, err := json.Marshal(teacher)
	require.NoError(t, err)

	var back User
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, teacher.ID, back.ID)
	assert.Equal(t, teacher.Name, back.Name)
	assert.Equal(t, teacher.Email, back.Email)
	assert.Equal(t, teacher.Role, back.Role)
	assert.True(t, teacher.EnrolledCourses.Equal(back.EnrolledCourses))
	assert.True(t, teacher.CompletedLessons.Equal(back.CompletedLessons))
	require.NotNil(t, back.Teaching)
	assert.True(t, teacher.Teaching.CreatedCourses.Equal(back.Teaching.CreatedCourses))
}

func TestUserUnmarshalRejectsUnknownRole(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"1","role":"admin"}`), &u)
	assert.Error(t, err)
}

func TestTeacherWithoutCreatedCoursesGetsEmptySet(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"1","name":"T","email":"t@x.com","role":"teacher","enrolledCourses":[],"completedLessons":[]}`), &u)
	require.NoError(t, err)
	require.NotNil(t, u.Teaching)
	assert.Equal(t, 0, u.Teaching.CreatedCourses.Len())
}
