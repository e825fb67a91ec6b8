package resume

import "io"

// Stage is a step of the resume pipeline, in execution order.
type Stage string

const (
	StageUpload Stage = "upload"
	StageParse  Stage = "parse"
	StageStore  Stage = "store"
	StageATS    Stage = "ats"
)

// Limits of an uploaded resume.
const (
	MaxFileSize = 5 << 20
)

var AllowedExtensions = []string{".pdf", ".doc", ".docx"}

// File is an uploaded resume file.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// Uploaded is the answer of the upload stage.
type Uploaded struct {
	ResumeID string
	FileURL  string
}

// Score is the answer of the ATS stage.
type Score struct {
	Score   float64
	Details map[string]any
}
