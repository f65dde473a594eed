package model

// JoinRequestStatus is the closed status enumeration of a join request.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestAccepted JoinRequestStatus = "accepted"
	JoinRequestRejected JoinRequestStatus = "rejected"
)

// ParseJoinRequestStatus validates an external status representation.
func ParseJoinRequestStatus(s string) (JoinRequestStatus, bool) {
	switch JoinRequestStatus(s) {
	case JoinRequestPending, JoinRequestAccepted, JoinRequestRejected:
		return JoinRequestStatus(s), true
	}
	return "", false
}

// Terminal reports whether the request may no longer be mutated.
func (s JoinRequestStatus) Terminal() bool {
	return s == JoinRequestAccepted || s == JoinRequestRejected
}

// JoinRequest is a candidate's application to a team, table join_requests.
// At most one pending request per (candidate, team) pair; the store enforces
// this with a partial unique index and the service checks it up front.
type JoinRequest struct {
	JoinRequestID string            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"join_request_id"`
	TeamID        string            `gorm:"type:uuid;not null"                             json:"team_id"`
	ProfileID     string            `gorm:"type:uuid;not null"                             json:"profile_id"`
	Status        JoinRequestStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	Message       string            `gorm:"type:text;not null;default:''"                  json:"message,omitempty"`
	BaseModel

	Team    *Team    `gorm:"foreignKey:TeamID;references:TeamID"       json:"team,omitempty"`
	Profile *Profile `gorm:"foreignKey:ProfileID;references:ProfileID" json:"profile,omitempty"`
}

// TableName sets the table name.
func (JoinRequest) TableName() string { return "join_requests" }
