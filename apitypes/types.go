// Package apitypes provides request and response types for the Khanesh HTTP API.
package apitypes

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Stats represents pipeline statistics.
type Stats struct {
	Recitations    int            `json:"recitations"`
	ByReviewStatus map[string]int `json:"by_review_status,omitempty"`
	BySyncStatus   map[string]int `json:"by_sync_status,omitempty"`
	QueueDepth     int            `json:"queue_depth"`
}

// UploadSession represents one upload session with its per-file outcomes.
type UploadSession struct {
	ID              string       `json:"id"`
	Kind            string       `json:"kind"`
	StartedAt       string       `json:"started_at"`
	EndedAt         string       `json:"ended_at,omitempty"`
	ProcessStatus   string       `json:"process_status"`
	ProcessProgress int          `json:"process_progress"`
	Files           []UploadFile `json:"files,omitempty"`
}

// UploadFile represents one file of an upload session.
type UploadFile struct {
	ID           string `json:"id"`
	FileName     string `json:"file_name"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	Processed    bool   `json:"processed"`
	Result       string `json:"result"`
}

// UploadHistory is a page of upload sessions.
type UploadHistory struct {
	Items    []UploadSession `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ProfileRequest carries profile fields for create and update.
type ProfileRequest struct {
	Name       string `json:"name"`
	ArtistName string `json:"artist_name"`
	ArtistURL  string `json:"artist_url"`
	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`
	FileSuffix string `json:"file_suffix"`
	IsDefault  bool   `json:"is_default"`
}

// Profile represents a recitation profile.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ArtistName string `json:"artist_name"`
	ArtistURL  string `json:"artist_url,omitempty"`
	SourceName string `json:"source_name,omitempty"`
	SourceURL  string `json:"source_url,omitempty"`
	FileSuffix string `json:"file_suffix"`
	IsDefault  bool   `json:"is_default"`
}

// Recitation represents one narration of a poem.
type Recitation struct {
	ID            int    `json:"id"`
	PoemID        int    `json:"poem_id"`
	AudioOrder    int    `json:"audio_order"`
	Title         string `json:"title"`
	ArtistName    string `json:"artist_name"`
	ArtistURL     string `json:"artist_url,omitempty"`
	SourceName    string `json:"source_name,omitempty"`
	SourceURL     string `json:"source_url,omitempty"`
	FileStem      string `json:"file_stem"`
	Checksum      string `json:"checksum"`
	MP3Size       int64  `json:"mp3_size"`
	ReviewStatus  string `json:"review_status"`
	ReviewMessage string `json:"review_message,omitempty"`
	SyncStatus    string `json:"sync_status"`
	CreatedAt     string `json:"created_at"`
}

// RecitationPage is a page of recitations.
type RecitationPage struct {
	Items    []Recitation `json:"items"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// RecitationUpdateRequest carries editable recitation metadata.
type RecitationUpdateRequest struct {
	Title      string `json:"title"`
	ArtistName string `json:"artist_name"`
	ArtistURL  string `json:"artist_url"`
	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`
}

// ModerationRequest carries a moderator's verdict.
type ModerationRequest struct {
	Result  string `json:"result"` // approve, reject or fix_requested
	Message string `json:"message,omitempty"`
}

// PublishTracker represents one publish attempt's step progress.
type PublishTracker struct {
	ID              string `json:"id"`
	RecitationID    int    `json:"recitation_id"`
	XMLCopied       bool   `json:"xml_copied"`
	MP3Copied       bool   `json:"mp3_copied"`
	FirstDBUpdated  bool   `json:"first_db_updated"`
	SecondDBUpdated bool   `json:"second_db_updated"`
	Finished        bool   `json:"finished"`
	LastError       string `json:"last_error,omitempty"`
	StartedAt       string `json:"started_at"`
	FinishedAt      string `json:"finished_at,omitempty"`
}

// TrackerPage is a page of publish trackers.
type TrackerPage struct {
	Items    []PublishTracker `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// RetryScanResponse reports the result of a manual retry scan.
type RetryScanResponse struct {
	Enqueued int `json:"enqueued"`
}

// Event represents a timeline event.
type Event struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id,omitempty"`
	Details     string `json:"details,omitempty"`
	Timestamp   string `json:"timestamp"`
}
