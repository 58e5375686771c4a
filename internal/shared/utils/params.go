package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"art/internal/shared/errors"
)

// ParseIDParam parses a positive numeric ID from a URL path parameter.
// entityName is used in error messages (e.g. "asset", "model number").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName+" ID is required", paramName)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid "+entityName+" ID", paramName)
	}

	return uint(id), nil
}

// ParseOptionalUintQuery parses an optional numeric query parameter. A missing
// value yields nil.
func ParseOptionalUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key+" query parameter", key)
	}
	u := uint(v)
	return &u, nil
}

// ParseOptionalBoolQuery parses an optional boolean query parameter.
func ParseOptionalBoolQuery(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key+" query parameter", key)
	}
	return &v, nil
}
