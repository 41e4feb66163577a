package repository

import (
	"errors"
	"fmt"

	"github.com/gocql/gocql"
	"github.com/schoolcloud/student-records/internal/model"
)

// translateError maps driver errors onto the domain taxonomy: connectivity
// failures become ErrStoreUnavailable, consistency/ack failures become
// ErrWriteFailed. Anything unrecognized passes through untouched.
func translateError(err error) error {
	var (
		writeTimeout *gocql.RequestErrWriteTimeout
		readTimeout  *gocql.RequestErrReadTimeout
		unavailable  *gocql.RequestErrUnavailable
	)
	switch {
	case errors.Is(err, gocql.ErrNoConnections),
		errors.Is(err, gocql.ErrConnectionClosed),
		errors.Is(err, gocql.ErrSessionClosed):
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	case errors.As(err, &readTimeout):
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	case errors.As(err, &writeTimeout), errors.As(err, &unavailable):
		return fmt.Errorf("%w: %v", model.ErrWriteFailed, err)
	}
	return err
}
