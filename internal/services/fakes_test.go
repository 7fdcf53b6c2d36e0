package services

import (
	"context"
	"sync"
	"time"

	"shootbook/internal/models/db_models"
)

type fakeNotifier struct {
	mu       sync.Mutex
	messages []Notification
	photos   []Photo
	msgErr   error
	photoErr error
}

func (f *fakeNotifier) SendMessage(_ context.Context, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, n)
	return f.msgErr
}

func (f *fakeNotifier) SendPhoto(_ context.Context, p Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.photos = append(f.photos, p)
	return f.photoErr
}

type fakeLedger struct {
	rows []LedgerRow
	err  error
}

func (f *fakeLedger) Append(_ context.Context, row LedgerRow) error {
	f.rows = append(f.rows, row)
	return f.err
}

type fakeOrderRepo struct {
	records map[string]*db_models.OrderRecord
	events  []*db_models.PaymentWebhookEvent
	saveErr error
	findErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{records: map[string]*db_models.OrderRecord{}}
}

func (f *fakeOrderRepo) Save(_ context.Context, rec *db_models.OrderRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[rec.OrderID] = rec
	return nil
}

func (f *fakeOrderRepo) FindByOrderID(_ context.Context, orderID string) (*db_models.OrderRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.records[orderID], nil
}

func (f *fakeOrderRepo) MarkConfirmed(_ context.Context, orderID, reference string, confirmedAt int64) (bool, error) {
	rec, ok := f.records[orderID]
	if !ok {
		return false, nil
	}
	rec.Status = db_models.OrderRecordConfirmed
	rec.PaymentReference = reference
	rec.ConfirmedAt = &confirmedAt
	return true, nil
}

func (f *fakeOrderRepo) List(_ context.Context, status string, page, pageSize int) ([]db_models.OrderRecord, int64, error) {
	var out []db_models.OrderRecord
	for _, r := range f.records {
		if status == "" || string(r.Status) == status {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) RecordWebhookEvent(_ context.Context, ev *db_models.PaymentWebhookEvent) error {
	f.events = append(f.events, ev)
	return nil
}

// recordingSleep stands in for the photo delay.
type recordingSleep struct {
	calls []time.Duration
}

func (r *recordingSleep) sleep(_ context.Context, d time.Duration) error {
	r.calls = append(r.calls, d)
	return nil
}
