package domain

// BookingRequest carries a service-booking enquiry. It is rendered into the
// confirmation emails and then discarded, never persisted.
type BookingRequest struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Message        string          `json:"message"`
	ServicesUse    string          `json:"servicesUse"`
	ServiceDetails *ServiceDetails `json:"serviceDetails,omitempty"`
}

// ServiceDetails is the optional structured block describing the selected
// package in full.
type ServiceDetails struct {
	OriginalName    string `json:"originalName"`
	OriginalPackage string `json:"originalPackage"`
	Price           string `json:"price"`
	Duration        string `json:"duration"`
	ServiceType     string `json:"serviceType"`
}
