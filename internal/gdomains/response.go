package gdomains

import (
	"fmt"
	"net/netip"
	"strings"
	"unicode"
)

type ResponseKind uint8

const (
	ResponseUnrecognized ResponseKind = iota
	ResponseSuccess
	ResponseRejection
)

func (r ResponseKind) String() string {
	switch r {
	case ResponseUnrecognized:
		return "unrecognized"
	case ResponseSuccess:
		return "success"
	case ResponseRejection:
		return "rejection"
	default:
		panic(fmt.Sprintf("response kind %d not implemented", r))
	}
}

// Response is the parsed body of an update response.
// Address is only set for the success kind, and Err is
// only set for the rejection and unrecognized kinds.
type Response struct {
	Kind    ResponseKind
	Status  string
	Address netip.Addr
	Err     error
}

const (
	statusGood  = "good"
	statusNochg = "nochg"
)

var rejections = map[string]error{ //nolint:gochecknoglobals
	"badauth":       ErrAuth,
	"nohost":        ErrHostnameNotExists,
	"notfqdn":       ErrHostnameNotFQDN,
	"badagent":      ErrBannedUserAgent,
	"abuse":         ErrAbuse,
	"911":           ErrDNSServerSide,
	"conflict A":    ErrConflictingRecord,
	"conflict AAAA": ErrConflictingRecord,
}

// ParseResponse parses the body returned by the update endpoint.
// Status prefixes are matched case sensitively at the very start
// of the body, and only trailing whitespace is ignored.
func ParseResponse(body string) (response Response) {
	body = strings.TrimRightFunc(body, unicode.IsSpace)

	if strings.HasPrefix(body, statusGood) || strings.HasPrefix(body, statusNochg) {
		return parseSuccess(body)
	}

	rejectionErr, ok := rejections[body]
	if ok {
		return Response{
			Kind:   ResponseRejection,
			Status: body,
			Err:    rejectionErr,
		}
	}

	return Response{
		Kind:   ResponseUnrecognized,
		Status: body,
		Err:    fmt.Errorf("%w: %q", ErrUnknownResponse, body),
	}
}

func parseSuccess(body string) (response Response) {
	fields := strings.Fields(body)
	response.Status = fields[0]
	const expectedFields = 2
	if len(fields) < expectedFields {
		response.Err = fmt.Errorf("%w: %w: %q",
			ErrUnknownResponse, ErrNoIPInResponse, body)
		return response
	}

	address, err := netip.ParseAddr(fields[1])
	if err != nil {
		response.Err = fmt.Errorf("%w: %w: %s",
			ErrUnknownResponse, ErrIPReceivedMalformed, err)
		return response
	}

	response.Kind = ResponseSuccess
	response.Address = address
	return response
}
