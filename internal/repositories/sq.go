package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// UniqueViolation is the postgres error code for a duplicate key.
const UniqueViolation = "23505"
