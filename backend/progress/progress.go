// Package progress derives display values from a catalog and session
// snapshot. Everything here is a pure function of its inputs.
package progress

import (
	"edubridge/backend/catalog"
	"edubridge/backend/models"
)

// roundPercent rounds 100*part/total to the nearest integer, half up.
// A zero total yields 0, never a division error.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

// CompletedLessonCount counts the course's lessons present in the user's
// completion set. Stray completion ids from other courses do not count.
func CompletedLessonCount(course *models.Course, user *models.User) int {
	if user == nil {
		return 0
	}
	n := 0
	for _, lesson := range course.Lessons {
		if user.CompletedLessons.Has(lesson.ID) {
			n++
		}
	}
	return n
}

// CourseProgress is the user's completion percentage for course, in [0,100].
func CourseProgress(course *models.Course, user *models.User) int {
	return roundPercent(CompletedLessonCount(course, user), len(course.Lessons))
}

func IsEnrolled(course *models.Course, user *models.User) bool {
	return user != nil && user.EnrolledCourses.Has(course.ID)
}

// TotalLessons sums lesson counts across courses.
func TotalLessons(courses []models.Course) int {
	total := 0
	for _, course := range courses {
		total += len(course.Lessons)
	}
	return total
}

// AverageProgress is the mean per-course progress over the user's enrolled
// courses, rounded half up; 0 with no enrollments.
func AverageProgress(cat *catalog.Catalog, user *models.User) int {
	if user == nil {
		return 0
	}
	enrolled := cat.CoursesFromSet(user.EnrolledCourses)
	if len(enrolled) == 0 {
		return 0
	}
	sum := 0
	for i := range enrolled {
		sum += CourseProgress(&enrolled[i], user)
	}
	return (2*sum + len(enrolled)) / (2 * len(enrolled))
}

// Navigation holds the neighbors of a lesson in its course's order sequence.
// A nil Previous/Next means the lesson sits at that boundary.
type Navigation struct {
	Previous *models.Lesson
	Next     *models.Lesson
}

// LessonNavigation locates lessonID by its position in the course's
// order-sorted lesson sequence. found is false when the lesson is not in the
// course at all, which is distinct from a boundary lesson with no neighbor.
func LessonNavigation(course *models.Course, lessonID string) (nav Navigation, found bool) {
	for i := range course.Lessons {
		if course.Lessons[i].ID != lessonID {
			continue
		}
		if i > 0 {
			nav.Previous = &course.Lessons[i-1]
		}
		if i < len(course.Lessons)-1 {
			nav.Next = &course.Lessons[i+1]
		}
		return nav, true
	}
	return Navigation{}, false
}
