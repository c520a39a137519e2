package models

// Appointment status values used by the backend.
const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment is a booked slot between a patient and a provider.
type Appointment struct {
	ID         int64   `json:"id"`
	PatientID  int64   `json:"patient_id"`
	ProviderID int64   `json:"provider_id"`
	StartTime  Time    `json:"start_time"`
	EndTime    Time    `json:"end_time"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  Time    `json:"created_at"`
}

// BookingRequest is the POST /appointments/book request body.
type BookingRequest struct {
	ProviderID int64  `json:"provider_id"`
	StartTime  Time   `json:"start_time"`
	EndTime    Time   `json:"end_time"`
	Reason     string `json:"reason,omitempty"`
}

// ProviderAppointment is one row of the provider dashboard: an upcoming
// appointment joined with the patient's name.
type ProviderAppointment struct {
	ID          int64   `json:"id"`
	StartTime   Time    `json:"start_time"`
	EndTime     Time    `json:"end_time"`
	Status      string  `json:"status"`
	Reason      *string `json:"reason"`
	PatientName *string `json:"patient_name"`
}
