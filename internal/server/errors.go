package server

import "errors"

// errNoServersAreCreated is returned by NewServer when the handler set
// carries no transport to serve the kit API on.
var errNoServersAreCreated = errors.New("no transport configured for the kit API")
