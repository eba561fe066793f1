package service

import dErrors "paynet/pkg/domain-errors"

var errNoSession = dErrors.New(dErrors.CodeUnauthorized, "authentication required")
