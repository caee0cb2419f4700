package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"tastyeats/entity"
	"tastyeats/utils"
)

type CheckoutState string

const (
	StateReviewing            CheckoutState = "reviewing"
	StateDetailCapture        CheckoutState = "detail_capture"
	StateMethodSelection      CheckoutState = "method_selection"
	StateAwaitingConfirmation CheckoutState = "awaiting_confirmation"
	StateCompleted            CheckoutState = "completed"
	StateCancelled            CheckoutState = "cancelled"
)

// DeliveryFee is the fixed charge added to every order total.
const DeliveryFee = 40.0

var paymentMethods = map[string]bool{"gpay": true, "phonepe": true, "upi": true}

var (
	ErrNoSession     = errors.New("no active checkout session")
	ErrBadTransition = errors.New("action not allowed in current checkout state")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrBadMethod     = errors.New("unknown payment method")
	ErrSubmitting    = errors.New("order submission already in progress")
)

type checkoutSession struct {
	state      CheckoutState
	customer   *entity.Customer
	method     string
	snapshot   []CartLine // captured entering awaiting_confirmation
	subtotal   float64
	submitting bool
}

// CheckoutService drives the per-device checkout flow:
//
//	reviewing -> detail_capture -> method_selection -> awaiting_confirmation -> completed
//
// with cancellation from any non-terminal state. Order submission happens
// only from awaiting_confirmation, so a customer profile is always
// committed before an order exists, and the submitted cart snapshot is the
// one visible when that state was entered.
type CheckoutService struct {
	cart     *CartService
	catalog  *CatalogService
	profiles ProfileStore
	orders   OrderSubmitter

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

func NewCheckoutService(cart *CartService, catalog *CatalogService, profiles ProfileStore, orders OrderSubmitter) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		catalog:  catalog,
		profiles: profiles,
		orders:   orders,
		sessions: make(map[string]*checkoutSession),
	}
}

type CheckoutStatus struct {
	State       CheckoutState    `json:"state"`
	Method      string           `json:"paymentMethod,omitempty"`
	Customer    *entity.Customer `json:"customer,omitempty"`
	Subtotal    float64          `json:"subtotal"`
	DeliveryFee float64          `json:"deliveryFee"`
	Total       float64          `json:"total"`
}

func (s *CheckoutService) status(ctx context.Context, deviceID string, sess *checkoutSession) *CheckoutStatus {
	subtotal := sess.subtotal
	if sess.state != StateAwaitingConfirmation {
		// Before the snapshot is taken the numbers track the live cart.
		subtotal = s.cart.Totals(ctx, deviceID, s.catalog.Snapshot()).TotalAmount
	}
	return &CheckoutStatus{
		State:       sess.state,
		Method:      sess.method,
		Customer:    sess.customer,
		Subtotal:    utils.Round2(subtotal),
		DeliveryFee: DeliveryFee,
		Total:       utils.Round2(subtotal + DeliveryFee),
	}
}

// Begin opens (or reopens) the cart-review step. Any previous unfinished
// session for the device is discarded; that is the same as cancelling it.
func (s *CheckoutService) Begin(ctx context.Context, deviceID string) (*CheckoutStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.sessions[deviceID]; ok && old.submitting {
		return nil, ErrSubmitting
	}
	sess := &checkoutSession{state: StateReviewing}
	s.sessions[deviceID] = sess
	return s.status(ctx, deviceID, sess), nil
}

func (s *CheckoutService) Status(ctx context.Context, deviceID string) (*CheckoutStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[deviceID]
	if !ok {
		return nil, ErrNoSession
	}
	return s.status(ctx, deviceID, sess), nil
}

// Proceed moves reviewing -> detail_capture. Guarded on a non-empty cart.
// The existing profile lookup is best-effort: a miss or a failed fetch
// just means the detail form starts blank.
func (s *CheckoutService) Proceed(ctx context.Context, deviceID, customerID string) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[deviceID]
	if !ok {
		return nil, ErrNoSession
	}
	if sess.state != StateReviewing {
		return nil, ErrBadTransition
	}
	if s.cart.Totals(ctx, deviceID, s.catalog.Snapshot()).TotalItems == 0 {
		return nil, ErrEmptyCart
	}

	if customerID != "" {
		if c, err := s.profiles.Get(customerID); err == nil {
			sess.customer = c
		}
	}
	sess.state = StateDetailCapture
	return sess.customer, nil
}

// SubmitDetails commits the customer profile (update when one was found,
// create otherwise) and moves detail_capture -> method_selection. On a
// failed write the state does not advance and the call may be retried.
func (s *CheckoutService) SubmitDetails(ctx context.Context, deviceID, name, phone, address string) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[deviceID]
	if !ok {
		return nil, ErrNoSession
	}
	if sess.state != StateDetailCapture {
		return nil, ErrBadTransition
	}

	var (
		committed *entity.Customer
		err       error
	)
	if sess.customer != nil {
		committed, err = s.profiles.Update(sess.customer.CustomerID, name, phone, address)
	} else {
		committed, err = s.profiles.Save(name, phone, address)
	}
	if err != nil {
		return nil, err
	}

	sess.customer = committed
	sess.state = StateMethodSelection
	return committed, nil
}

// SelectMethod commits a payment method and captures the cart snapshot the
// submission will use, entering awaiting_confirmation. Re-selecting while
// awaiting confirmation is allowed and retakes the snapshot. An empty
// snapshot is refused: the cart may have been emptied since Proceed, or the
// catalog may not price any of its entries yet, and either way submission
// would produce a zero-item order.
func (s *CheckoutService) SelectMethod(ctx context.Context, deviceID, method string) (*CheckoutStatus, error) {
	if !paymentMethods[method] {
		return nil, ErrBadMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[deviceID]
	if !ok {
		return nil, ErrNoSession
	}
	if sess.state != StateMethodSelection && sess.state != StateAwaitingConfirmation {
		return nil, ErrBadTransition
	}
	if sess.submitting {
		return nil, ErrSubmitting
	}

	snapshot := s.cart.View(ctx, deviceID, s.catalog.Snapshot())
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}

	sess.method = method
	sess.snapshot = snapshot
	sess.subtotal = 0
	for _, line := range sess.snapshot {
		sess.subtotal += line.Item.Price * float64(line.Quantity)
	}
	sess.state = StateAwaitingConfirmation
	return s.status(ctx, deviceID, sess), nil
}

// PaymentAmount is what the payment step shows (and encodes into the UPI
// QR): snapshot subtotal plus delivery fee.
func (s *CheckoutService) PaymentAmount(deviceID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[deviceID]
	if !ok {
		return 0, ErrNoSession
	}
	if sess.state != StateAwaitingConfirmation {
		return 0, ErrBadTransition
	}
	return utils.Round2(sess.subtotal + DeliveryFee), nil
}

type orderRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Confirm is the "payment completed" assertion. There is no payment
// verification behind it; the order is created as completed on the user's
// word (a deliberate trust boundary, not an oversight). At most one
// submission is in flight per session; on failure the session stays in
// awaiting_confirmation and Confirm may be called again.
func (s *CheckoutService) Confirm(ctx context.Context, deviceID string) (*entity.Order, error) {
	s.mu.Lock()
	sess, ok := s.sessions[deviceID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	if sess.state != StateAwaitingConfirmation {
		s.mu.Unlock()
		return nil, ErrBadTransition
	}
	if sess.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitting
	}
	if len(sess.snapshot) == 0 {
		// Unreachable through SelectMethod's guard; kept so a zero-item
		// order can never be created from here.
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}
	sess.submitting = true

	rows := make([]orderRow, 0, len(sess.snapshot))
	for _, line := range sess.snapshot {
		rows = append(rows, orderRow{
			ID:       line.Item.ItemID,
			Name:     line.Item.Name,
			Price:    line.Item.Price,
			Quantity: line.Quantity,
		})
	}
	items, _ := json.Marshal(rows)
	order := &entity.Order{
		Items:         string(items),
		Total:         utils.Round2(sess.subtotal + DeliveryFee),
		Status:        entity.OrderStatusCompleted,
		PaymentMethod: sess.method,
		CustomerID:    sess.customer.CustomerID,
	}
	s.mu.Unlock()

	created, err := s.orders.Submit(ctx, order)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.submitting = false
	if err != nil {
		// Cart untouched; the user may retry with the same snapshot.
		return nil, err
	}

	// Terminal: the session is gone, Status reports ErrNoSession from here.
	s.cart.Clear(ctx, deviceID)
	delete(s.sessions, deviceID)
	return created, nil
}

// Cancel tears the session down from any non-terminal state. No durable
// side effects: the cart and any saved profile stay as last persisted.
func (s *CheckoutService) Cancel(deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[deviceID]
	if !ok {
		return ErrNoSession
	}
	if sess.submitting {
		return ErrSubmitting
	}
	delete(s.sessions, deviceID)
	return nil
}
