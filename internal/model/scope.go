package model

// Scope identifies the caller of a request. Both fields are optional:
// an anonymous search carries neither, a logged-out device carries only
// DeviceID.
type Scope struct {
	UserID   int64  `json:"user_id,omitempty"`
	DeviceID string `json:"device_id,omitempty"`
}

// IsAnonymous reports whether no caller identity is present at all.
func (s Scope) IsAnonymous() bool {
	return s.UserID == 0 && s.DeviceID == ""
}
