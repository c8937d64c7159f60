package model

// Role identifies who produced a transcript line.
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleDoorman Role = "doorman"
)

// TranscriptEvent is one heard or spoken line of the intercom conversation.
type TranscriptEvent struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
