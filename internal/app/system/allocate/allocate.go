// internal/app/system/allocate/allocate.go

// Package allocate implements the roster allocation: partitioning interns
// into teams of up to five under tech leads that share their college
// affiliation, then distributing the leftovers across whatever capacity
// remains anywhere.
//
// The allocation is a pure in-memory computation. It runs once per roster
// load and the result is held by the assignment service until the next
// load; nothing here touches the database.
package allocate

import (
	"math/rand"
	"time"

	"github.com/coderelay/internhub/internal/app/system/normalize"
	"github.com/coderelay/internhub/internal/domain/models"
	"github.com/google/uuid"
)

const (
	// GroupSize is the maximum number of interns in one group.
	GroupSize = 5

	// GroupsPerLead is the maximum number of groups one tech lead owns.
	GroupsPerLead = 5

	// Capacity is the maximum number of interns one tech lead supervises.
	Capacity = GroupSize * GroupsPerLead
)

// Group is an ordered team of 1..GroupSize interns under one tech lead.
type Group struct {
	Interns []models.Intern
}

// Result is the outcome of one allocation run. ByLead is keyed by the
// normalized tech-lead email; Leads preserves roster order so callers can
// iterate deterministically.
type Result struct {
	RunID uuid.UUID

	Leads  []models.TechLead
	ByLead map[string][]Group

	UnassignedInterns []models.Intern
	UnassignedLeads   []models.TechLead
}

// GroupsFor returns the groups assigned to the tech lead with the given
// email (matched case-insensitively) and whether the lead exists at all.
func (r *Result) GroupsFor(email string) ([]Group, bool) {
	key := normalize.Email(email)
	for _, l := range r.Leads {
		if normalize.Email(l.Email) == key {
			return r.ByLead[key], true
		}
	}
	return nil, false
}

// AssignedCount returns the number of interns assigned to the given lead.
func (r *Result) AssignedCount(email string) int {
	n := 0
	for _, g := range r.ByLead[normalize.Email(email)] {
		n += len(g.Interns)
	}
	return n
}

// TotalAssigned returns the number of interns placed in any group.
func (r *Result) TotalAssigned() int {
	n := 0
	for _, groups := range r.ByLead {
		for _, g := range groups {
			n += len(g.Interns)
		}
	}
	return n
}

// leadState tracks one lead's groups while the allocation runs.
type leadState struct {
	lead     models.TechLead
	groups   []Group
	assigned int
}

func (s *leadState) place(in models.Intern) {
	if len(s.groups) == 0 || len(s.groups[len(s.groups)-1].Interns) >= GroupSize {
		s.groups = append(s.groups, Group{})
	}
	g := &s.groups[len(s.groups)-1]
	g.Interns = append(g.Interns, in)
	s.assigned++
}

// Allocate partitions interns into groups under tech leads.
//
// Pass 1 (affinity): for each affiliation in roster order, leads of that
// affiliation (also in roster order) each pull up to Capacity interns from
// the affiliation's bucket, chunked into groups of up to GroupSize.
// Partial groups are assigned like any other.
//
// Pass 2 (leftovers): interns whose affiliation had no lead, or whose
// leads filled up, are handed one at a time to a uniformly random lead
// with remaining capacity, joining that lead's open group. These
// placements may cross affiliations.
//
// Interns that still have no seat end up in UnassignedInterns; leads that
// end with zero groups end up in UnassignedLeads. Nothing is ever dropped
// or placed twice.
//
// rng drives the leftover distribution and may be nil, in which case a
// time-seeded source is used. Inputs are validated first: every record
// needs an email and an affiliation, and emails must be unique within
// each roster; violations return a *ValidationError and no result.
func Allocate(interns []models.Intern, leads []models.TechLead, rng *rand.Rand) (*Result, error) {
	if err := validate(interns, leads); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Bucket interns by affiliation, preserving roster order of both the
	// affiliations themselves and the interns within each bucket.
	var bucketOrder []string
	buckets := make(map[string][]models.Intern)
	for _, in := range interns {
		aff := normalize.Affiliation(in.Affiliation)
		if _, ok := buckets[aff]; !ok {
			bucketOrder = append(bucketOrder, aff)
		}
		buckets[aff] = append(buckets[aff], in)
	}

	states := make([]*leadState, 0, len(leads))
	leadsByAff := make(map[string][]*leadState)
	for _, l := range leads {
		st := &leadState{lead: l}
		states = append(states, st)
		aff := normalize.Affiliation(l.Affiliation)
		leadsByAff[aff] = append(leadsByAff[aff], st)
	}

	// Affinity pass.
	var leftovers []models.Intern
	for _, aff := range bucketOrder {
		bucket := buckets[aff]
		for _, st := range leadsByAff[aff] {
			for len(bucket) > 0 && st.assigned < Capacity {
				take := GroupSize
				if room := Capacity - st.assigned; room < take {
					take = room
				}
				if len(bucket) < take {
					take = len(bucket)
				}
				st.groups = append(st.groups, Group{Interns: bucket[:take:take]})
				st.assigned += take
				bucket = bucket[take:]
			}
			if len(bucket) == 0 {
				break
			}
		}
		leftovers = append(leftovers, bucket...)
	}

	// Leftover pass: random lead with remaining capacity, one intern at a
	// time, selection without replacement once a lead fills up.
	open := make([]*leadState, 0, len(states))
	for _, st := range states {
		if st.assigned < Capacity {
			open = append(open, st)
		}
	}
	for len(leftovers) > 0 && len(open) > 0 {
		i := rng.Intn(len(open))
		st := open[i]
		st.place(leftovers[0])
		leftovers = leftovers[1:]
		if st.assigned >= Capacity {
			open = append(open[:i], open[i+1:]...)
		}
	}

	res := &Result{
		RunID:  uuid.New(),
		Leads:  leads,
		ByLead: make(map[string][]Group, len(leads)),
	}
	for _, st := range states {
		if len(st.groups) == 0 {
			res.UnassignedLeads = append(res.UnassignedLeads, st.lead)
			continue
		}
		res.ByLead[normalize.Email(st.lead.Email)] = st.groups
	}
	res.UnassignedInterns = leftovers
	return res, nil
}
