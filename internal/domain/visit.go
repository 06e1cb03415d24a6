package domain

type VisitStatus string

const (
	VisitStatusScheduled VisitStatus = "SCHEDULED"
	VisitStatusConfirmed VisitStatus = "CONFIRMED"
	VisitStatusCompleted VisitStatus = "COMPLETED"
	VisitStatusCancelled VisitStatus = "CANCELLED"
)

// Visit is a scheduled showing of a listing to a prospective client.
type Visit struct {
	ID          string      `json:"id"`
	ListingID   string      `json:"listing_id"`
	AgentID     int32       `json:"agent_id"`
	ClientName  string      `json:"client_name"`
	ClientPhone string      `json:"client_phone"`
	VisitDate   string      `json:"visit_date"` // yyyy-mm-dd
	VisitTime   string      `json:"visit_time"` // hh:mm, optional
	Note        string      `json:"note"`
	Status      VisitStatus `json:"status"`
	CreatedOn   string      `json:"created_on"`
}
