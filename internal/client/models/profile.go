package models

// Profile is a patient profile as returned by /profile/me. The endpoint
// returns JSON null until the patient fills the profile in.
type Profile struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	FullName    string  `json:"full_name"`
	DateOfBirth Date    `json:"date_of_birth"`
	Phone       string  `json:"phone"`
	Insurance   *string `json:"insurance"`
}

// ProfileUpdate is the PUT /profile/me request body. A nil Insurance leaves
// the field empty on the server.
type ProfileUpdate struct {
	FullName    string  `json:"full_name"`
	DateOfBirth Date    `json:"date_of_birth"`
	Phone       string  `json:"phone"`
	Insurance   *string `json:"insurance,omitempty"`
}
