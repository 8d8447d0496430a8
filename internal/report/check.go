package report

import (
	"github.com/tdxplot/tdxplot/internal/tdx"
)

// CheckQuery refuses query types the report cannot answer because the
// columns they depend on are missing.
func (s *Schema) CheckQuery(qt tdx.QueryType) error {
	switch qt {
	case tdx.QueryPerWeek:
		if !s.Has(FieldCreated) {
			return SchemaError{Msg: "a per-week query needs a Created column"}
		}
	case tdx.QueryPerBuilding:
		if !s.Has(FieldBuilding) {
			return SchemaError{Msg: "a per-building query needs a building column"}
		}
	case tdx.QueryPerRoom:
		if !s.Has(FieldBuilding) || !s.Has(FieldRoom) {
			return SchemaError{Msg: "a per-room query needs building and room columns"}
		}
	}
	return nil
}
