package services

import (
	"context"
	"errors"
	"sort"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/core/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes. Misses return gorm.ErrRecordNotFound like the
// GORM-backed implementations; failNext simulates a store outage.

type fakeRequestRepo struct {
	nextID   uint
	requests map[uint]*models.FlightRequest
	failNext error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint]*models.FlightRequest)}
}

func (r *fakeRequestRepo) takeErr() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *fakeRequestRepo) Create(_ context.Context, request *models.FlightRequest) error {
	if err := r.takeErr(); err != nil {
		return err
	}
	r.nextID++
	request.ID = r.nextID
	cp := *request
	r.requests[request.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id uint) (*models.FlightRequest, error) {
	if err := r.takeErr(); err != nil {
		return nil, err
	}
	request, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *request
	return &cp, nil
}

func (r *fakeRequestRepo) List(_ context.Context) ([]*models.FlightRequest, error) {
	if err := r.takeErr(); err != nil {
		return nil, err
	}
	return r.collect(func(*models.FlightRequest) bool { return true }), nil
}

func (r *fakeRequestRepo) ListByRequester(_ context.Context, requesterID uint) ([]*models.FlightRequest, error) {
	return r.collect(func(req *models.FlightRequest) bool { return req.RequesterID == requesterID }), nil
}

func (r *fakeRequestRepo) ListByStatus(_ context.Context, status domain.RequestStatus) ([]*models.FlightRequest, error) {
	return r.collect(func(req *models.FlightRequest) bool { return req.Status == status }), nil
}

func (r *fakeRequestRepo) Update(_ context.Context, request *models.FlightRequest) error {
	if err := r.takeErr(); err != nil {
		return err
	}
	if _, ok := r.requests[request.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *request
	r.requests[request.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) Delete(_ context.Context, id uint) error {
	delete(r.requests, id)
	return nil
}

func (r *fakeRequestRepo) collect(keep func(*models.FlightRequest) bool) []*models.FlightRequest {
	var out []*models.FlightRequest
	for _, req := range r.requests {
		if keep(req) {
			cp := *req
			out = append(out, &cp)
		}
	}
	// newest first, matching the GORM repositories
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

type fakePlanRepo struct {
	nextID   uint
	plans    map[uint]*models.FlightPlan
	failNext error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[uint]*models.FlightPlan)}
}

func (r *fakePlanRepo) takeErr() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *fakePlanRepo) Create(_ context.Context, plan *models.FlightPlan) error {
	if err := r.takeErr(); err != nil {
		return err
	}
	r.nextID++
	plan.ID = r.nextID
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id uint) (*models.FlightPlan, error) {
	if err := r.takeErr(); err != nil {
		return nil, err
	}
	plan, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *plan
	return &cp, nil
}

func (r *fakePlanRepo) GetByRequestID(_ context.Context, requestID uint) (*models.FlightPlan, error) {
	if err := r.takeErr(); err != nil {
		return nil, err
	}
	for _, plan := range r.plans {
		if plan.FlightRequestID == requestID {
			cp := *plan
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePlanRepo) List(_ context.Context) ([]*models.FlightPlan, error) {
	var out []*models.FlightPlan
	for _, plan := range r.plans {
		cp := *plan
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *models.FlightPlan) error {
	if err := r.takeErr(); err != nil {
		return err
	}
	if _, ok := r.plans[plan.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id uint) error {
	delete(r.plans, id)
	return nil
}

type fakeNotificationRepo struct {
	nextID        uint
	notifications []*models.Notification
	failNext      error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.nextID++
	notification.ID = r.nextID
	cp := *notification
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id uint) (*models.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, role domain.Role, recipientID uint) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.RecipientRole != role {
			continue
		}
		if n.RecipientID != nil && *n.RecipientID != recipientID {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id uint) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) ofType(t domain.NotificationType) []*models.Notification {
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

type fakeRateRepo struct {
	nextID   uint
	rates    []*models.HourlyRate
	failNext error
}

func newFakeRateRepo() *fakeRateRepo {
	return &fakeRateRepo{}
}

func (r *fakeRateRepo) Create(_ context.Context, rate *models.HourlyRate) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.nextID++
	rate.ID = r.nextID
	cp := *rate
	r.rates = append(r.rates, &cp)
	return nil
}

func (r *fakeRateRepo) GetByID(_ context.Context, id uint) (*models.HourlyRate, error) {
	for _, rate := range r.rates {
		if rate.ID == id {
			cp := *rate
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRateRepo) List(_ context.Context) ([]*models.HourlyRate, error) {
	out := make([]*models.HourlyRate, 0, len(r.rates))
	for _, rate := range r.rates {
		cp := *rate
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRateRepo) ListByRegistration(_ context.Context, registration string) ([]*models.HourlyRate, error) {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return nil, err
	}
	var out []*models.HourlyRate
	for _, rate := range r.rates {
		if rate.AircraftRegistration == registration {
			cp := *rate
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRateRepo) Update(_ context.Context, rate *models.HourlyRate) error {
	for i, existing := range r.rates {
		if existing.ID == rate.ID {
			cp := *rate
			r.rates[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRateRepo) Delete(_ context.Context, id uint) error {
	for i, existing := range r.rates {
		if existing.ID == id {
			r.rates = append(r.rates[:i], r.rates[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeCrewRepo struct {
	nextID   uint
	entries  []*models.CrewHoursEntry
	failNext error
}

func newFakeCrewRepo() *fakeCrewRepo {
	return &fakeCrewRepo{}
}

func (r *fakeCrewRepo) Create(_ context.Context, entry *models.CrewHoursEntry) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.nextID++
	entry.ID = r.nextID
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeCrewRepo) GetByID(_ context.Context, id uint) (*models.CrewHoursEntry, error) {
	for _, entry := range r.entries {
		if entry.ID == id {
			cp := *entry
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCrewRepo) List(_ context.Context) ([]*models.CrewHoursEntry, error) {
	out := make([]*models.CrewHoursEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		cp := *entry
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCrewRepo) ListByPilot(_ context.Context, pilotID uint) ([]*models.CrewHoursEntry, error) {
	var out []*models.CrewHoursEntry
	for _, entry := range r.entries {
		if entry.PilotID == pilotID {
			cp := *entry
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCrewRepo) SumByPilot(_ context.Context, pilotID uint) (float64, error) {
	var total float64
	for _, entry := range r.entries {
		if entry.PilotID == pilotID {
			total += entry.Hours
		}
	}
	return total, nil
}

func (r *fakeCrewRepo) Update(_ context.Context, entry *models.CrewHoursEntry) error {
	for i, existing := range r.entries {
		if existing.ID == entry.ID {
			cp := *entry
			r.entries[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCrewRepo) Delete(_ context.Context, id uint) error {
	for i, existing := range r.entries {
		if existing.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var errStoreDown = errors.New("connection refused")
