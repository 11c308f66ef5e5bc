package common

import "github.com/carson-networks/finance-tracker/internal/service"

// Cursor is the pagination block returned by list endpoints.
type Cursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// PageQuery is embedded in list inputs for offset pagination.
type PageQuery struct {
	Position int `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
}

func (q PageQuery) Cursor() *service.Cursor {
	if q.Position == 0 && q.Limit == 0 {
		return nil
	}
	return &service.Cursor{Position: q.Position, Limit: q.Limit}
}

// NextCursor renders the service cursor, nil on the last page.
func NextCursor(next *service.Cursor) *Cursor {
	if next == nil {
		return nil
	}
	return &Cursor{Position: next.Position, Limit: next.Limit}
}
