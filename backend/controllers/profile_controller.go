package controllers

import (
	"edubridge/backend/catalog"
	"edubridge/backend/config"
	"edubridge/backend/progress"
	"edubridge/backend/session"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProfileController struct {
	Catalog  *catalog.Catalog
	Sessions *session.Store
	Cfg      *config.Config
}

func NewProfileController(cat *catalog.Catalog, sessions *session.Store, cfg *config.Config) *ProfileController {
	return &ProfileController{Catalog: cat, Sessions: sessions, Cfg: cfg}
}

// GetProfile is the profile page view model: the session record, per-course
// progress over the enrollment set, aggregate stats and the achievements grid.
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	user, ok := pc.Sessions.Current()
	if !ok {
		return utils.Unauthorized(c, "No active session")
	}

	enrolled := pc.Catalog.CoursesFromSet(user.EnrolledCourses)
	courseViews := make([]fiber.Map, 0, len(enrolled))
	for i := range enrolled {
		course := &enrolled[i]
		courseViews = append(courseViews, fiber.Map{
			"id":               course.ID,
			"title":            course.Title,
			"lessons":          len(course.Lessons),
			"completedLessons": progress.CompletedLessonCount(course, user),
			"progress":         progress.CourseProgress(course, user),
		})
	}

	unlocked := progress.AchievementsUnlocked(pc.Catalog, user)
	badges := make([]fiber.Map, 0, len(progress.Achievements()))
	for _, a := range progress.Achievements() {
		badges = append(badges, fiber.Map{
			"id":          a.ID,
			"title":       a.Title,
			"description": a.Description,
			"unlocked":    unlocked.Has(string(a.ID)),
		})
	}

	return c.JSON(fiber.Map{
		"user":            user,
		"enrolledCourses": courseViews,
		"stats": fiber.Map{
			"enrolledCourses":  user.EnrolledCourses.Len(),
			"completedLessons": user.CompletedLessons.Len(),
			"totalLessons":     progress.TotalLessons(enrolled),
			"averageProgress":  progress.AverageProgress(pc.Catalog, user),
		},
		"achievements": badges,
	})
}
