package models

// Error taxonomy returned by the services. Storage errors that are none of
// these propagate unmodified.

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	if e.Message == "" {
		return "not allowed"
	}
	return e.Message
}

type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string {
	if e.Message == "" {
		return "bad request"
	}
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}
