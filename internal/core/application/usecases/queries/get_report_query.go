package queries

import (
	"errors"

	"parcellocker/internal/pkg/guard"
)

var ErrGetReportQueryIsNotConstructed = errors.New(
	"GetReportQuery must be created via NewGetReportQuery constructor",
)

// GetReportQuery asks for the rendered analytics report.
type GetReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReportQuery creates the query.
func NewGetReportQuery() GetReportQuery {
	return GetReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}
