package service

import "errors"

// ErrVersionIsNotSpecified means neither the binary nor the config carries a version.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")
