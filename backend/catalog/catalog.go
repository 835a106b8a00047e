package catalog

import (
	"fmt"
	"strings"
	"sync"

	"edubridge/backend/models"
)

// Catalog is the static, read-only course registry. It is loaded once and
// never mutated.
type Catalog struct {
	courses []models.Course
	byID    map[string]*models.Course
}

// New validates the course set and builds the lookup index. Lesson order
// values must be unique and consecutive starting at 1, and the lesson slice
// must already be sorted by order.
func New(courses []models.Course) (*Catalog, error) {
	c := &Catalog{
		courses: courses,
		byID:    make(map[string]*models.Course, len(courses)),
	}
	for i := range courses {
		course := &courses[i]
		if _, dup := c.byID[course.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate course id %q", course.ID)
		}
		c.byID[course.ID] = course

		seen := make(map[string]struct{}, len(course.Lessons))
		for j, lesson := range course.Lessons {
			if _, dup := seen[lesson.ID]; dup {
				return nil, fmt.Errorf("catalog: course %q: duplicate lesson id %q", course.ID, lesson.ID)
			}
			seen[lesson.ID] = struct{}{}
			if lesson.Order != j+1 {
				return nil, fmt.Errorf("catalog: course %q: lesson %q has order %d, want %d",
					course.ID, lesson.ID, lesson.Order, j+1)
			}
		}
	}
	return c, nil
}

// MustNew is for fixture data; invalid fixture data is a programming error.
func MustNew(courses []models.Course) *Catalog {
	c, err := New(courses)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in EduBridge catalog, built on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNew(fixtureCourses())
	})
	return defaultCatalog
}

func (c *Catalog) Courses() []models.Course {
	return c.courses
}

func (c *Catalog) CourseByID(id string) (*models.Course, bool) {
	course, ok := c.byID[id]
	return course, ok
}

func (c *Catalog) LessonByID(courseID, lessonID string) (*models.Lesson, bool) {
	course, ok := c.byID[courseID]
	if !ok {
		return nil, false
	}
	return course.LessonByID(lessonID)
}

// FindResource locates a resource anywhere in the catalog and returns its
// owning course and lesson.
func (c *Catalog) FindResource(resourceID string) (*models.Course, *models.Lesson, *models.Resource, bool) {
	for i := range c.courses {
		course := &c.courses[i]
		for j := range course.Lessons {
			lesson := &course.Lessons[j]
			for k := range lesson.Resources {
				if lesson.Resources[k].ID == resourceID {
					return course, lesson, &lesson.Resources[k], true
				}
			}
		}
	}
	return nil, nil, nil, false
}

// Query filters the catalog. Empty fields match everything; Text matches
// title and description case-insensitively.
type Query struct {
	Category string
	Level    models.Level
	Text     string
}

func (c *Catalog) Filter(q Query) []models.Course {
	var out []models.Course
	text := strings.ToLower(q.Text)
	for _, course := range c.courses {
		if q.Category != "" && course.Category != q.Category {
			continue
		}
		if q.Level != "" && course.Level != q.Level {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(course.Title), text) &&
			!strings.Contains(strings.ToLower(course.Description), text) {
			continue
		}
		out = append(out, course)
	}
	return out
}

// CoursesFromSet returns the catalog courses whose ids are in the set,
// in catalog order. Ids with no catalog entry are skipped.
func (c *Catalog) CoursesFromSet(ids models.IDSet) []models.Course {
	var out []models.Course
	for _, course := range c.courses {
		if ids.Has(course.ID) {
			out = append(out, course)
		}
	}
	return out
}

// TotalStudents sums the display-only student counters for landing stats.
func (c *Catalog) TotalStudents() int {
	total := 0
	for _, course := range c.courses {
		total += course.Students
	}
	return total
}
