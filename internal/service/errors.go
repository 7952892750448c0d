// Package service implements the booking business rules on top of the
// data access layer.  Failures surface as one of two kinds matched by
// errors.Is: ErrNotFound (a referenced entity does not exist) and
// ErrForbidden (a business-rule rejection).  Anything else is a store
// fault and passes through untouched for the handler to map to 500.
package service

import "errors"

// ErrNotFound is returned when a referenced booking or room does not
// exist.  Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned on business-rule rejections: ineligible
// ticket, occupied room, or missing booking ownership.  Handlers
// translate it into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")
