package controllers

import (
	"errors"

	"edubridge/backend/catalog"
	"edubridge/backend/config"
	"edubridge/backend/models"
	"edubridge/backend/progress"
	"edubridge/backend/resources"
	"edubridge/backend/session"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type LessonsController struct {
	Catalog   *catalog.Catalog
	Sessions  *session.Store
	Retriever resources.Retriever
	Cfg       *config.Config
}

func NewLessonsController(cat *catalog.Catalog, sessions *session.Store, retriever resources.Retriever, cfg *config.Config) *LessonsController {
	return &LessonsController{Catalog: cat, Sessions: sessions, Retriever: retriever, Cfg: cfg}
}

func lessonRef(lesson *models.Lesson) fiber.Map {
	if lesson == nil {
		return nil
	}
	return fiber.Map{
		"id":    lesson.ID,
		"title": lesson.Title,
	}
}

// GetLesson is the lesson page view model: markdown content, resources,
// completion flag and prev/next navigation within the course.
func (lc *LessonsController) GetLesson(c *fiber.Ctx) error {
	course, ok := lc.Catalog.CourseByID(c.Params("courseId"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	lesson, ok := course.LessonByID(c.Params("lessonId"))
	if !ok {
		return utils.NotFound(c, "Lesson not found")
	}

	nav, _ := progress.LessonNavigation(course, lesson.ID)
	user, _ := lc.Sessions.Current()

	return c.JSON(fiber.Map{
		"course": fiber.Map{
			"id":           course.ID,
			"title":        course.Title,
			"totalLessons": len(course.Lessons),
		},
		"lesson":    lesson,
		"completed": user != nil && user.CompletedLessons.Has(lesson.ID),
		"navigation": fiber.Map{
			"previous": lessonRef(nav.Previous),
			"next":     lessonRef(nav.Next),
		},
	})
}

// Complete marks the lesson completed for the caller. Completing twice is
// the same as completing once; enrollment is not required.
func (lc *LessonsController) Complete(c *fiber.Ctx) error {
	course, ok := lc.Catalog.CourseByID(c.Params("courseId"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	lesson, ok := course.LessonByID(c.Params("lessonId"))
	if !ok {
		return utils.NotFound(c, "Lesson not found")
	}

	if err := lc.Sessions.CompleteLesson(c.Context(), lesson.ID); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	user, _ := lc.Sessions.Current()
	return c.JSON(fiber.Map{
		"message":  "Lesson completed",
		"progress": progress.CourseProgress(course, user),
		"user":     user,
	})
}

// DownloadResource streams the named payload for a resource id. An unknown
// id is a 404; a failed fetch of a known resource is a 502.
func (lc *LessonsController) DownloadResource(c *fiber.Ctx) error {
	name, payload, err := lc.Retriever.Fetch(c.Context(), c.Params("id"))
	if errors.Is(err, resources.ErrNotFound) {
		return utils.NotFound(c, "Resource not found")
	}
	var retrievalErr *resources.RetrievalError
	if errors.As(err, &retrievalErr) {
		return utils.Error(c, fiber.StatusBadGateway, retrievalErr)
	}
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(payload)
}
