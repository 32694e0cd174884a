package storage

import "errors"

var ErrSubmissionAlreadyExists = errors.New("submission already exists in storage")
