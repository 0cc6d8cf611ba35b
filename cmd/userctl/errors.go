package main

import "errors"

var (
	errConnecting         = errors.New("error connecting to user store")
	errUserNotFound       = errors.New("user not found")
	errOperationFailed    = errors.New("operation failed")
	errListingUnavailable = errors.New("user listing is unavailable")
	errImportIncomplete   = errors.New("some users were not imported")
)
