package queries

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
)

// ListDriversQueryHandler returns every registered driver in registration order. The
// drivers are copies; changing them does not touch the registry.
type ListDriversQueryHandler struct {
	reader ports.DriverReader
}

func NewListDriversQueryHandler(reader ports.DriverReader) ListDriversQueryHandler {
	return ListDriversQueryHandler{reader: reader}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]*driver.Driver, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.reader.ListDrivers(ctx)
}
