package dispatcher

// RenderJob represents a queued request to render one saved draft.
type RenderJob struct {
	Slug   string `json:"slug"`
	Format string `json:"format"`
}

// IsValid checks that the job names a draft and a known output format.
func (j *RenderJob) IsValid() bool {
	return j.Slug != "" && (j.Format == "docx" || j.Format == "latex")
}

// Extension returns the artifact file extension for the job's format.
func (j *RenderJob) Extension() string {
	if j.Format == "latex" {
		return "tex"
	}
	return "docx"
}
