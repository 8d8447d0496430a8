package tdx

// QueryType tags which aggregate view a run should produce.
type QueryType string

const (
	QueryPerWeek      QueryType = "perweek"
	QueryPerBuilding  QueryType = "perbuilding"
	QueryPerRoom      QueryType = "perroom"
	QueryPerRequestor QueryType = "perrequestor"
	QueryShowTickets  QueryType = "tickets"
)
