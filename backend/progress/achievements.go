package progress

import (
	"edubridge/backend/catalog"
	"edubridge/backend/models"
)

type AchievementID string

const (
	AchievementGettingStarted   AchievementID = "getting-started"
	AchievementFirstLesson      AchievementID = "first-lesson"
	AchievementDedicatedLearner AchievementID = "dedicated-learner"
	AchievementCourseMaster     AchievementID = "course-master"
)

// Achievement pairs a badge with its unlock predicate. Predicates are
// independent of one another; adding a badge means appending one entry.
type Achievement struct {
	ID          AchievementID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	unlocked    func(cat *catalog.Catalog, user *models.User) bool
}

var achievements = []Achievement{
	{
		ID:          AchievementGettingStarted,
		Title:       "Getting Started",
		Description: "Enroll in a course",
		unlocked: func(_ *catalog.Catalog, user *models.User) bool {
			return user.EnrolledCourses.Len() > 0
		},
	},
	{
		ID:          AchievementFirstLesson,
		Title:       "First Lesson",
		Description: "Complete 1 lesson",
		unlocked: func(_ *catalog.Catalog, user *models.User) bool {
			return user.CompletedLessons.Len() > 0
		},
	},
	{
		ID:          AchievementDedicatedLearner,
		Title:       "Dedicated Learner",
		Description: "Complete 5 lessons",
		unlocked: func(_ *catalog.Catalog, user *models.User) bool {
			return user.CompletedLessons.Len() >= 5
		},
	},
	{
		ID:          AchievementCourseMaster,
		Title:       "Course Master",
		Description: "Complete a course",
		unlocked: func(cat *catalog.Catalog, user *models.User) bool {
			enrolled := cat.CoursesFromSet(user.EnrolledCourses)
			for i := range enrolled {
				if len(enrolled[i].Lessons) > 0 && CourseProgress(&enrolled[i], user) == 100 {
					return true
				}
			}
			return false
		},
	},
}

// Achievements lists every badge in registry order.
func Achievements() []Achievement {
	return achievements
}

// AchievementsUnlocked returns the ids of the badges user has unlocked.
func AchievementsUnlocked(cat *catalog.Catalog, user *models.User) models.IDSet {
	out := models.NewIDSet()
	if user == nil {
		return out
	}
	for _, a := range achievements {
		if a.unlocked(cat, user) {
			out.Add(string(a.ID))
		}
	}
	return out
}
