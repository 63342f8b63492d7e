package client

import "errors"

var errMissingDependencies = errors.New("client app requires services and a sync worker")
