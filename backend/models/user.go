package models

import (
	"encoding/json"
	"fmt"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// TeacherProfile carries the state that only exists for teacher accounts.
type TeacherProfile struct {
	CreatedCourses IDSet
}

// User is the session record. Role is fixed at creation. Teaching is non-nil
// exactly when Role is RoleTeacher, so created-course state is a checked
// variant rather than an optional field.
type User struct {
	ID               string
	Name             string
	Email            string
	Role             Role
	EnrolledCourses  IDSet
	CompletedLessons IDSet
	Teaching         *TeacherProfile
}

func NewStudent(id, name, email string) *User {
	return &User{
		ID:               id,
		Name:             name,
		Email:            email,
		Role:             RoleStudent,
		EnrolledCourses:  NewIDSet(),
		CompletedLessons: NewIDSet(),
	}
}

func NewTeacher(id, name, email string) *User {
	return &User{
		ID:               id,
		Name:             name,
		Email:            email,
		Role:             RoleTeacher,
		EnrolledCourses:  NewIDSet(),
		CompletedLessons: NewIDSet(),
		Teaching:         &TeacherProfile{CreatedCourses: NewIDSet()},
	}
}

func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

func (u *User) Clone() *User {
	c := *u
	c.EnrolledCourses = u.EnrolledCourses.Clone()
	c.CompletedLessons = u.CompletedLessons.Clone()
	if u.Teaching != nil {
		c.Teaching = &TeacherProfile{CreatedCourses: u.Teaching.CreatedCourses.Clone()}
	}
	return &c
}

// userRecord is the flat wire/persistence shape: createdCourses appears only
// for teachers.
type userRecord struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	EnrolledCourses  IDSet  `json:"enrolledCourses"`
	CompletedLessons IDSet  `json:"completedLessons"`
	CreatedCourses   *IDSet `json:"createdCourses,omitempty"`
}

func (u User) MarshalJSON() ([]byte, error) {
	rec := userRecord{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		EnrolledCourses:  u.EnrolledCourses,
		CompletedLessons: u.CompletedLessons,
	}
	if u.Teaching != nil {
		rec.CreatedCourses = &u.Teaching.CreatedCourses
	}
	return json.Marshal(rec)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if !rec.Role.Valid() {
		return fmt.Errorf("invalid role %q", rec.Role)
	}
	u.ID = rec.ID
	u.Name = rec.Name
	u.Email = rec.Email
	u.Role = rec.Role
	u.EnrolledCourses = rec.EnrolledCourses
	u.CompletedLessons = rec.CompletedLessons
	u.Teaching = nil
	if rec.Role == RoleTeacher {
		created := NewIDSet()
		if rec.CreatedCourses != nil {
			created = *rec.CreatedCourses
		}
		u.Teaching = &TeacherProfile{CreatedCourses: created}
	}
	return nil
}
