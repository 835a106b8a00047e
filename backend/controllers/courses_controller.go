package controllers

import (
	"edubridge/backend/catalog"
	"edubridge/backend/config"
	"edubridge/backend/models"
	"edubridge/backend/progress"
	"edubridge/backend/session"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Catalog  *catalog.Catalog
	Sessions *session.Store
	Cfg      *config.Config
}

func NewCoursesController(cat *catalog.Catalog, sessions *session.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Catalog: cat, Sessions: sessions, Cfg: cfg}
}

func courseSummary(course *models.Course, user *models.User) fiber.Map {
	return fiber.Map{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"level":       course.Level,
		"duration":    course.Duration,
		"category":    course.Category,
		"students":    course.Students,
		"teacherName": course.TeacherName,
		"lessons":     len(course.Lessons),
		"enrolled":    progress.IsEnrolled(course, user),
		"progress":    progress.CourseProgress(course, user),
	}
}

// Landing is the pre-login landing view: the catalog plus aggregate stats.
func (cc *CoursesController) Landing(c *fiber.Ctx) error {
	all := cc.Catalog.Courses()
	summaries := make([]fiber.Map, 0, len(all))
	for i := range all {
		summaries = append(summaries, courseSummary(&all[i], nil))
	}

	return c.JSON(fiber.Map{
		"courses": summaries,
		"stats": fiber.Map{
			"courses":  len(all),
			"lessons":  progress.TotalLessons(all),
			"students": cc.Catalog.TotalStudents(),
		},
	})
}

// ListCourses returns the catalog filtered by category, level and free-text
// query parameters.
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	user, _ := cc.Sessions.Current()

	filtered := cc.Catalog.Filter(catalog.Query{
		Category: c.Query("category"),
		Level:    models.Level(c.Query("level")),
		Text:     c.Query("q"),
	})

	summaries := make([]fiber.Map, 0, len(filtered))
	for i := range filtered {
		summaries = append(summaries, courseSummary(&filtered[i], user))
	}
	return c.JSON(fiber.Map{"courses": summaries})
}

// GetCourseDetails is the course page view model: the full course with
// per-lesson completion flags and the caller's progress.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, ok := cc.Catalog.CourseByID(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	user, _ := cc.Sessions.Current()

	lessons := make([]fiber.Map, 0, len(course.Lessons))
	for _, lesson := range course.Lessons {
		lessons = append(lessons, fiber.Map{
			"id":        lesson.ID,
			"title":     lesson.Title,
			"duration":  lesson.Duration,
			"order":     lesson.Order,
			"resources": len(lesson.Resources),
			"completed": user != nil && user.CompletedLessons.Has(lesson.ID),
		})
	}

	return c.JSON(fiber.Map{
		"course":           courseSummary(course, user),
		"lessons":          lessons,
		"completedLessons": progress.CompletedLessonCount(course, user),
	})
}

// Enroll adds the course to the caller's enrollment set. Enrolling twice is
// the same as enrolling once.
func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	course, ok := cc.Catalog.CourseByID(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	if err := cc.Sessions.EnrollInCourse(c.Context(), course.ID); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	user, _ := cc.Sessions.Current()
	return c.JSON(fiber.Map{
		"message": "Enrolled",
		"user":    user,
	})
}

// Dashboard is the role-dependent dashboard view model.
func (cc *CoursesController) Dashboard(c *fiber.Ctx) error {
	user, ok := cc.Sessions.Current()
	if !ok {
		return utils.Unauthorized(c, "No active session")
	}

	if user.IsTeacher() {
		return cc.teacherDashboard(c, user)
	}
	return cc.studentDashboard(c, user)
}

func (cc *CoursesController) studentDashboard(c *fiber.Ctx, user *models.User) error {
	var enrolled, available []fiber.Map
	all := cc.Catalog.Courses()
	for i := range all {
		course := &all[i]
		if progress.IsEnrolled(course, user) {
			enrolled = append(enrolled, courseSummary(course, user))
		} else {
			available = append(available, courseSummary(course, user))
		}
	}

	return c.JSON(fiber.Map{
		"role":             models.RoleStudent,
		"enrolledCourses":  enrolled,
		"availableCourses": available,
	})
}

func (cc *CoursesController) teacherDashboard(c *fiber.Ctx, user *models.User) error {
	created := cc.Catalog.CoursesFromSet(user.Teaching.CreatedCourses)

	totalStudents := 0
	summaries := make([]fiber.Map, 0, len(created))
	for i := range created {
		totalStudents += created[i].Students
		summaries = append(summaries, courseSummary(&created[i], user))
	}

	return c.JSON(fiber.Map{
		"role":          models.RoleTeacher,
		"myCourses":     summaries,
		"totalStudents": totalStudents,
		"totalLessons":  progress.TotalLessons(created),
	})
}
