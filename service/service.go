package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	goskema "github.com/reoring/goskema"

	"github.com/fulldump/devcheck"
	"github.com/fulldump/devcheck/collection"
)

// Service keeps one in-memory collection of records behind the devcheck
// gate. The collection operations themselves are pure, so the service only
// needs a mutex to swap the current slice between concurrent callers.
type Service struct {
	cond devcheck.Condition
	item goskema.Schema[JSON]
	ops  *collection.Ops[JSON]

	idField string

	mu   sync.Mutex
	rows []JSON
}

func NewService(cond devcheck.Condition, item goskema.Schema[JSON], idField string) *Service {
	return &Service{
		cond:    cond,
		item:    item,
		ops:     collection.New[JSON](cond, item).WithIdField(idField),
		idField: idField,
		rows:    []JSON{},
	}
}

func (s *Service) Records(ctx context.Context) ([]JSON, error) {

	s.mu.Lock()
	snapshot := make([]JSON, len(s.rows))
	copy(snapshot, s.rows)
	s.mu.Unlock()

	return s.ops.Validate(ctx, snapshot)
}

// Insert gates every record through the item schema, assigns an identifier
// when absent, and appends them to the collection.
func (s *Service) Insert(ctx context.Context, records ...JSON) ([]JSON, error) {

	inserted := make([]JSON, 0, len(records))
	for _, record := range records {

		if _, exists := record[s.idField]; !exists {
			withId := JSON{}
			for k, v := range record {
				withId[k] = v
			}
			withId[s.idField] = uuid.New().String()
			record = withId
		}

		record, err := devcheck.Decode[JSON](ctx, s.item, record, s.cond())
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, record)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.ops.Add(ctx, s.rows, inserted, collection.AtEnd)
	if err != nil {
		return nil, err
	}
	s.rows = rows

	return inserted, nil
}

func (s *Service) Find(ctx context.Context, filter JSON) ([]JSON, error) {

	s.mu.Lock()
	rows := s.rows
	s.mu.Unlock()

	return s.ops.Fetch(ctx, rows, collection.Filter[JSON](filter))
}

func (s *Service) Get(ctx context.Context, id string) (JSON, error) {

	s.mu.Lock()
	rows := s.rows
	s.mu.Unlock()

	records, err := s.ops.Fetch(ctx, rows, collection.ById[JSON](id))
	if err != nil {
		return nil, err
	}

	return records[0], nil
}

func (s *Service) Delete(ctx context.Context, id string) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.ops.Remove(ctx, s.rows, collection.ById[JSON](id))
	if err != nil {
		return err
	}
	s.rows = rows

	return nil
}

// Remove drops every record matching the filter and returns them.
func (s *Service) Remove(ctx context.Context, filter JSON) ([]JSON, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	query := collection.Filter[JSON](filter)

	removed, err := s.ops.Fetch(ctx, s.rows, query)
	if err != nil {
		return nil, err
	}

	rows, err := s.ops.Remove(ctx, s.rows, query)
	if err != nil {
		return nil, err
	}
	s.rows = rows

	return removed, nil
}

// Patch merge-patches every record matching the filter and returns the
// patched records.
func (s *Service) Patch(ctx context.Context, filter JSON, diff JSON) ([]JSON, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	query := collection.Filter[JSON](filter)

	positions, err := s.ops.Locate(ctx, s.rows, query)
	if err != nil {
		return nil, err
	}

	rows, err := s.ops.Patch(ctx, s.rows, diff, query)
	if err != nil {
		return nil, err
	}
	s.rows = rows

	patched := make([]JSON, 0, len(positions))
	for _, i := range positions {
		patched = append(patched, rows[i])
	}

	return patched, nil
}
