package models

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

type ResourceType string

const (
	ResourcePDF   ResourceType = "pdf"
	ResourceDoc   ResourceType = "doc"
	ResourceVideo ResourceType = "video"
	ResourceImage ResourceType = "image"
)

// Resource is a downloadable attachment of a lesson. Size is a display label,
// not an authoritative byte count.
type Resource struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ResourceType `json:"type"`
	Size        string       `json:"size"`
	DownloadURL string       `json:"downloadUrl"`
}

// Lesson ids are unique within their course; Order values are unique and
// consecutive starting at 1 and define the navigation sequence.
type Lesson struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Duration  string     `json:"duration"`
	Order     int        `json:"order"`
	Content   string     `json:"content"`
	VideoURL  string     `json:"videoUrl,omitempty"`
	Resources []Resource `json:"resources,omitempty"`
}

// Course is immutable after catalog load. Students is a display-only counter.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Level       Level    `json:"level"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
	Students    int      `json:"students"`
	TeacherID   string   `json:"teacherId,omitempty"`
	TeacherName string   `json:"teacherName,omitempty"`
	Lessons     []Lesson `json:"lessons"`
}

func (c *Course) LessonByID(lessonID string) (*Lesson, bool) {
	for i := range c.Lessons {
		if c.Lessons[i].ID == lessonID {
			return &c.Lessons[i], true
		}
	}
	return nil, false
}
