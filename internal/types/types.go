// Package types defines the core records of the seller console: leads, the
// opportunities they convert into, and the per-table view-state preferences.
// Enum validity predicates live here so the stores and the persistence layer
// validate against a single source of truth.
package types

import "time"

// LeadStatus is the triage state of a lead.
type LeadStatus string

const (
	StatusNew         LeadStatus = "new"
	StatusContacted   LeadStatus = "contacted"
	StatusQualified   LeadStatus = "qualified"
	StatusUnqualified LeadStatus = "unqualified"
	StatusConverted   LeadStatus = "converted"
)

// StatusAll is the sentinel filter value that matches every status.
const StatusAll = "all"

// LeadStatuses lists every valid status in display order.
var LeadStatuses = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusUnqualified,
	StatusConverted,
}

// Lead is a prospective customer record subject to qualification triage.
// Owned exclusively by the leads store; mutated only through patch merges
// keyed by ID.
type Lead struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Company string     `json:"company"`
	Email   string     `json:"email"`
	Source  string     `json:"source"`
	Score   int        `json:"score"`
	Status  LeadStatus `json:"status"`
}

// OpportunityStage is the pipeline stage of an opportunity.
type OpportunityStage string

const (
	StageProspecting OpportunityStage = "prospecting"
	StageProposal    OpportunityStage = "proposal"
	StageNegotiation OpportunityStage = "negotiation"
	StageWon         OpportunityStage = "won"
	StageLost        OpportunityStage = "lost"
)

// StageAll is the sentinel filter value that matches every stage.
const StageAll = "all"

// OpportunityStages lists every valid stage in display order.
var OpportunityStages = []OpportunityStage{
	StageProspecting,
	StageProposal,
	StageNegotiation,
	StageWon,
	StageLost,
}

// Opportunity is a sales pipeline entry created when a lead converts.
// LeadID is a non-owning back-reference to the originating lead; CreatedAt
// is set once at creation and never changes.
type Opportunity struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Stage       OpportunityStage `json:"stage"`
	Amount      *float64         `json:"amount,omitempty"`
	AccountName string           `json:"accountName"`
	LeadID      string           `json:"leadId,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// SortKey selects the primary sort column for the leads table.
type SortKey string

const (
	SortByScore SortKey = "score"
	SortByName  SortKey = "name"
)

// SortDir is the direction of the primary sort comparison.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// LeadsViewState holds the user-controlled view preferences for the leads
// table. It is persisted independently of the canonical list and validated
// field by field on rehydration.
type LeadsViewState struct {
	SearchTerm     string  `json:"searchTerm"`
	StatusFilter   string  `json:"statusFilter"` // a LeadStatus or StatusAll
	SortKey        SortKey `json:"sortKey"`
	SortDir        SortDir `json:"sortDir"`
	SelectedLeadID *string `json:"selectedLeadId"`
	PageSize       int     `json:"pageSize"`
}

// OppsViewState is the opportunities-table analog of LeadsViewState.
// Opportunities only sort by amount, so there is no sort key.
type OppsViewState struct {
	SearchTerm            string  `json:"searchTerm"`
	StageFilter           string  `json:"stageFilter"` // an OpportunityStage or StageAll
	SortDir               SortDir `json:"sortDir"`
	SelectedOpportunityID *string `json:"selectedOpportunityId"`
	PageSize              int     `json:"pageSize"`
}

// DefaultLeadsView returns the leads view-state used when nothing valid is
// persisted: score descending, no filters, nothing selected.
func DefaultLeadsView() LeadsViewState {
	return LeadsViewState{
		SearchTerm:   "",
		StatusFilter: StatusAll,
		SortKey:      SortByScore,
		SortDir:      SortDesc,
		PageSize:     20,
	}
}

// DefaultOppsView returns the opportunities view-state defaults.
func DefaultOppsView() OppsViewState {
	return OppsViewState{
		SearchTerm:  "",
		StageFilter: StageAll,
		SortDir:     SortDesc,
		PageSize:    10,
	}
}

// ValidStatus reports whether s is a known lead status.
func ValidStatus(s LeadStatus) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusUnqualified, StatusConverted:
		return true
	}
	return false
}

// ValidStatusFilter reports whether s is a known status or the "all" sentinel.
func ValidStatusFilter(s string) bool {
	return s == StatusAll || ValidStatus(LeadStatus(s))
}

// ValidStage reports whether s is a known opportunity stage.
func ValidStage(s OpportunityStage) bool {
	switch s {
	case StageProspecting, StageProposal, StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}

// ValidStageFilter reports whether s is a known stage or the "all" sentinel.
func ValidStageFilter(s string) bool {
	return s == StageAll || ValidStage(OpportunityStage(s))
}

// ValidSortKey reports whether k is a sortable leads column.
func ValidSortKey(k SortKey) bool {
	return k == SortByScore || k == SortByName
}

// ValidSortDir reports whether d is a known sort direction.
func ValidSortDir(d SortDir) bool {
	return d == SortAsc || d == SortDesc
}
