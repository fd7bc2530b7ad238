package models

// ValidationErrors maps a request field to its error messages.
// It is serialized as {"user": ["The user field is required."]}.
type ValidationErrors map[string][]string

// Add appends msg to the list of errors of field.
func (v ValidationErrors) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

// LoginErrorResponse is returned when credentials are rejected.
type LoginErrorResponse struct {
	Error string `json:"error"`
}

// FileUploadResponse is returned by the upload endpoint.
type FileUploadResponse struct {
	FileAddress string `json:"fileAddress"`
}

// CallerInfo describes the authenticated caller.
type CallerInfo struct {
	User       string `json:"user"`
	NgoID      int64  `json:"idNgo"`
	ObserverID int64  `json:"idObserver,omitempty"`
	NgoAdminID int64  `json:"ngoAdminId,omitempty"`
	Organizer  bool   `json:"organizer"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
