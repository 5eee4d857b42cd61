package order

import "errors"

var ErrEmptyReply = errors.New("empty reply from order-service")
