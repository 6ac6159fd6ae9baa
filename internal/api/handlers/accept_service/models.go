package accept_service

// AcceptServiceRequest HTTP request model
type AcceptServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}

// AcceptServiceResponse HTTP response model
type AcceptServiceResponse struct {
	PackageID int64   `json:"packageId"`
	Services  []int64 `json:"services"`
	Accepted  []int64 `json:"accepted"`
}
