package models

// Message is a chat message posted to a group.
type Message struct {
	ID       string
	GroupID  string
	SenderID string
	Text     string

	// CreatedAt is the Unix timestamp in milliseconds, used for ordering.
	CreatedAt int64
}

// Receipt records proof of payment uploaded by a member. Only the location of
// the file is stored; the upload itself happens elsewhere.
type Receipt struct {
	ID         string
	GroupID    string
	URL        string
	UploadedBy string
	FileName   string
	CreatedAt  int64
}
