package gdomains

import "errors"

var (
	ErrConnectivity      = errors.New("cannot reach Google Domains")
	ErrTimeout           = errors.New("update request timed out")
	ErrProviderRejection = errors.New("update rejected by Google Domains")
	ErrUnknownResponse   = errors.New("unknown response received")
	ErrCanceled          = errors.New("update canceled")
)

// Rejection reasons, always wrapped together with ErrProviderRejection.
var (
	ErrAuth              = errors.New("bad authentication")
	ErrHostnameNotExists = errors.New("hostname does not exist")
	ErrHostnameNotFQDN   = errors.New("hostname is not a fully qualified domain name")
	ErrBannedUserAgent   = errors.New("user agent is banned")
	ErrAbuse             = errors.New("banned due to abuse")
	ErrDNSServerSide     = errors.New("server side DNS error")
	ErrConflictingRecord = errors.New("conflicting record")
)

var (
	ErrNoIPInResponse      = errors.New("no IP address in response")
	ErrIPReceivedMalformed = errors.New("malformed IP address received")
)
