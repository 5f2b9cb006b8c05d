package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrListCollectionsFailed  = errors.New("failed to list mongo collections")
	ErrInvalidValidator       = errors.New("invalid collection validator")
)
