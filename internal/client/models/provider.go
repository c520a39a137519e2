package models

// Provider is a care provider patients book appointments with.
type Provider struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Specialty *string `json:"specialty"`
	Location  *string `json:"location"`
}

// ProviderCreate is the POST /providers request body.
type ProviderCreate struct {
	Name      string  `json:"name"`
	Specialty *string `json:"specialty,omitempty"`
	Location  *string `json:"location,omitempty"`
}
