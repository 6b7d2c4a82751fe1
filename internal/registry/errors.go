package registry

import (
	"fmt"
	"net/http"
)

// Endpoint names one of the registry lookups.
type Endpoint string

// Registry endpoints used per company.
const (
	EndpointProfile  Endpoint = "profile"
	EndpointCharges  Endpoint = "charges"
	EndpointOfficers Endpoint = "officers"
)

// StatusError is returned when the registry answers with a non-2xx status.
type StatusError struct {
	Endpoint   Endpoint
	Number     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry returned %d %s for %s of company %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.Endpoint, e.Number)
}

// NotFound reports whether the registry had no record for the request.
func (e *StatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
