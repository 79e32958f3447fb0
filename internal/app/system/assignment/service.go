// internal/app/system/assignment/service.go

// Package assignment holds the current allocation in memory and answers
// the questions the dashboards ask: which groups belong to a lead, what
// is each intern's status, and how the program looks overall.
//
// The allocation is recomputed from the persisted rosters at startup and
// after every upload; between reloads all reads are served from memory
// under a read lock. Status toggles write through to the status store and
// never trigger a reallocation.
package assignment

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	rosterstore "github.com/coderelay/internhub/internal/app/store/rosters"
	statusstore "github.com/coderelay/internhub/internal/app/store/statuses"
	"github.com/coderelay/internhub/internal/app/system/allocate"
	"github.com/coderelay/internhub/internal/app/system/normalize"
	"github.com/coderelay/internhub/internal/app/system/status"
	"go.uber.org/zap"
)

var (
	// ErrNoRoster means no rosters have been uploaded yet.
	ErrNoRoster = errors.New("no rosters loaded")

	// ErrLeadNotFound means the email matches no tech lead in the
	// current allocation.
	ErrLeadNotFound = errors.New("tech lead not found")

	// ErrInternNotFound means the email matches no intern in the current
	// allocation.
	ErrInternNotFound = errors.New("intern not found")

	// ErrInvalidStatus means the submitted status is not one of the two
	// allowed values.
	ErrInvalidStatus = errors.New("invalid status")
)

// Service computes and caches the allocation.
type Service struct {
	rosters  *rosterstore.Store
	statuses *statusstore.Store
	seed     int64
	log      *zap.Logger

	mu  sync.RWMutex
	res *allocate.Result
}

// New creates the service. seed fixes the random source used for
// leftover distribution; pass 0 for a time-seeded source.
func New(rosters *rosterstore.Store, statuses *statusstore.Store, seed int64, log *zap.Logger) *Service {
	return &Service{
		rosters:  rosters,
		statuses: statuses,
		seed:     seed,
		log:      log,
	}
}

// Reload reads both rosters from the store, runs the allocation, and
// swaps in the new result. With no rosters persisted yet the service
// stays empty and reads return ErrNoRoster.
func (s *Service) Reload(ctx context.Context) error {
	interns, err := s.rosters.ListInterns(ctx)
	if err != nil {
		return err
	}
	leads, err := s.rosters.ListLeads(ctx)
	if err != nil {
		return err
	}

	if len(interns) == 0 && len(leads) == 0 {
		s.mu.Lock()
		s.res = nil
		s.mu.Unlock()
		s.log.Info("no rosters persisted, allocation empty")
		return nil
	}

	var rng *rand.Rand
	if s.seed != 0 {
		rng = rand.New(rand.NewSource(s.seed))
	}
	res, err := allocate.Allocate(interns, leads, rng)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.res = res
	s.mu.Unlock()

	s.log.Info("allocation rebuilt",
		zap.String("run_id", res.RunID.String()),
		zap.Int("interns", len(interns)),
		zap.Int("tech_leads", len(leads)),
		zap.Int("assigned", res.TotalAssigned()),
		zap.Int("unassigned_interns", len(res.UnassignedInterns)),
		zap.Int("unassigned_leads", len(res.UnassignedLeads)),
	)
	return nil
}

// current returns the cached result or ErrNoRoster.
func (s *Service) current() (*allocate.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.res == nil {
		return nil, ErrNoRoster
	}
	return s.res, nil
}

// Loaded reports whether an allocation is available.
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.res != nil
}

// Unassigned returns the interns and leads left out of the current
// allocation.
func (s *Service) Unassigned() ([]InternVM, []LeadSummary, error) {
	res, err := s.current()
	if err != nil {
		return nil, nil, err
	}
	interns := make([]InternVM, 0, len(res.UnassignedInterns))
	for _, in := range res.UnassignedInterns {
		interns = append(interns, InternVM{Intern: in, Status: status.Default})
	}
	leads := make([]LeadSummary, 0, len(res.UnassignedLeads))
	for _, l := range res.UnassignedLeads {
		leads = append(leads, LeadSummary{Lead: l})
	}
	return interns, leads, nil
}

// SetStatus validates and persists a status toggle for the given intern.
// The intern must exist in the current allocation. Setting the status an
// intern already has succeeds and changes nothing.
func (s *Service) SetStatus(ctx context.Context, email, newStatus string) error {
	res, err := s.current()
	if err != nil {
		return err
	}
	value := status.Normalize(newStatus)
	if value == "" {
		return ErrInvalidStatus
	}
	if !internExists(res, email) {
		return ErrInternNotFound
	}
	return s.statuses.Set(ctx, email, value)
}

func internExists(res *allocate.Result, email string) bool {
	key := normalize.Email(email)
	for _, groups := range res.ByLead {
		for _, g := range groups {
			for _, in := range g.Interns {
				if normalize.Email(in.Email) == key {
					return true
				}
			}
		}
	}
	for _, in := range res.UnassignedInterns {
		if normalize.Email(in.Email) == key {
			return true
		}
	}
	return false
}
