package core

import "errors"

// ErrUpstream marks failures of the upstream message source: transport
// errors, unexpected payload shapes, or zero usable messages. The HTTP
// boundary maps it to a gateway-class status.
var ErrUpstream = errors.New("upstream message source failed")
