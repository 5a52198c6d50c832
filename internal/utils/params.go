package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParamUUID parses a uuid path parameter such as :idea_id or :question_id.
func ParamUUID(ctx *gin.Context, name string) (uuid.UUID, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return uuid.Nil, errors.New(name + " not found")
	}

	id, err := uuid.Parse(raw)

	if err != nil {
		return uuid.Nil, errors.New("invalid " + name)
	}

	return id, nil
}
