package mlog

import "errors"

var errCursorMismatch = errors.New("mlog: party cursors disagree at seal time")
