package models

import "time"

// Video — единица каталога. InstructorID это совещательное владение,
// сервис по нему ничего не запрещает.
type Video struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Category     string    `json:"category" db:"category"`
	Instructor   string    `json:"instructor" db:"instructor"`
	InstructorID string    `json:"instructorId" db:"instructor_id"`
	VideoURL     string    `json:"videoUrl" db:"video_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
