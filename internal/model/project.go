package model

// Project ties everything together for save/load.
type Project struct {
	Name     string         `json:"name"`
	Lines    []LineItem     `json:"lines"`
	Settings NestSettings   `json:"settings"`
	Result   *NestingResult `json:"result,omitempty"`
}

// NewProject returns an empty project with default settings.
func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Lines:    []LineItem{},
		Settings: DefaultSettings(),
	}
}
