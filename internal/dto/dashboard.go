package dto

import "github.com/bouesti/journal-repository/internal/core/domain"

// DashboardResponse carries the per-owner counts plus the owner's journals.
type DashboardResponse struct {
	Uploaded int               `json:"uploaded"`
	Pending  int               `json:"pending"`
	Approved int               `json:"approved"`
	Rejected int               `json:"rejected"`
	Journals []JournalResponse `json:"journals"`
}

// AdminOverviewResponse is the administrator review-queue view.
type AdminOverviewResponse struct {
	Pending        []JournalResponse `json:"pending"`
	Approved       []JournalResponse `json:"approved"`
	Rejected       []JournalResponse `json:"rejected"`
	TotalUploaders int               `json:"totalUploaders"`
}

// ToAdminOverviewResponse converts the domain aggregate.
func ToAdminOverviewResponse(o *domain.AdminOverview) AdminOverviewResponse {
	return AdminOverviewResponse{
		Pending:        ToJournalResponseList(o.Pending),
		Approved:       ToJournalResponseList(o.Approved),
		Rejected:       ToJournalResponseList(o.Rejected),
		TotalUploaders: o.TotalUploaders,
	}
}

// DecisionResponse confirms an approve/reject action, keyed by title so the
// boundary can surface a success message.
type DecisionResponse struct {
	JournalID string `json:"journalID"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
