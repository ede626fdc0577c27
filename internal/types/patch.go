package types

// LeadPatch is a partial lead update. Nil fields are left untouched by the
// merge; a patch built from a full snapshot therefore restores every field,
// which is what the rollback path relies on.
type LeadPatch struct {
	Name    *string
	Company *string
	Email   *string
	Source  *string
	Score   *int
	Status  *LeadStatus
}

// Apply merges the patch into lead and returns the result.
func (p LeadPatch) Apply(lead Lead) Lead {
	if p.Name != nil {
		lead.Name = *p.Name
	}
	if p.Company != nil {
		lead.Company = *p.Company
	}
	if p.Email != nil {
		lead.Email = *p.Email
	}
	if p.Source != nil {
		lead.Source = *p.Source
	}
	if p.Score != nil {
		lead.Score = *p.Score
	}
	if p.Status != nil {
		lead.Status = *p.Status
	}
	return lead
}

// PatchFromLead builds a full-record patch from a snapshot, for exact
// rollback.
func PatchFromLead(lead Lead) LeadPatch {
	return LeadPatch{
		Name:    &lead.Name,
		Company: &lead.Company,
		Email:   &lead.Email,
		Source:  &lead.Source,
		Score:   &lead.Score,
		Status:  &lead.Status,
	}
}

// OppPatch is a partial opportunity update. Amount needs a third state beyond
// set/untouched: ClearAmount unsets it, matching an edit that blanks the
// amount field.
type OppPatch struct {
	Name        *string
	AccountName *string
	Stage       *OpportunityStage
	Amount      *float64
	ClearAmount bool
}

// Apply merges the patch into opp and returns the result. ID, LeadID and
// CreatedAt are immutable and never patched.
func (p OppPatch) Apply(opp Opportunity) Opportunity {
	if p.Name != nil {
		opp.Name = *p.Name
	}
	if p.AccountName != nil {
		opp.AccountName = *p.AccountName
	}
	if p.Stage != nil {
		opp.Stage = *p.Stage
	}
	if p.ClearAmount {
		opp.Amount = nil
	} else if p.Amount != nil {
		v := *p.Amount
		opp.Amount = &v
	}
	return opp
}

// PatchFromOpportunity builds a full-record patch from a snapshot, for exact
// rollback.
func PatchFromOpportunity(opp Opportunity) OppPatch {
	p := OppPatch{
		Name:        &opp.Name,
		AccountName: &opp.AccountName,
		Stage:       &opp.Stage,
	}
	if opp.Amount != nil {
		v := *opp.Amount
		p.Amount = &v
	} else {
		p.ClearAmount = true
	}
	return p
}
