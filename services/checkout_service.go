package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/metrics"

	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderLine is one {item, quantity} pair of an order draft.
type OrderLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// OrderDraft is the transient per-restaurant grouping submitted as one order.
type OrderDraft struct {
	CustomerName string
	Restaurant   string
	Items        []OrderLine
}

// OrderSubmitter places one draft. The production implementation is
// OrderService; tests swap in a recording fake.
type OrderSubmitter interface {
	Submit(userKey string, draft *OrderDraft) error
}

// CheckoutOutcome reports one restaurant's submission result.
type CheckoutOutcome struct {
	Restaurant string `json:"restaurant"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// CheckoutService turns a cart into per-restaurant orders. Submissions are
// independent: one restaurant failing does not stop the others. After all
// groups settle the cart is cleared unconditionally, failures included; the
// per-group outcomes are the only record of what went wrong. See DESIGN.md
// before changing that.
type CheckoutService struct {
	Carts     *CartService
	Submitter OrderSubmitter
	Log       *zap.Logger
}

func NewCheckoutService(carts *CartService, submitter OrderSubmitter, log *zap.Logger) *CheckoutService {
	return &CheckoutService{Carts: carts, Submitter: submitter, Log: log}
}

func (s *CheckoutService) Checkout(key, displayName string) ([]CheckoutOutcome, error) {
	if key == "" {
		return nil, ErrIdentityRequired
	}

	entries, err := s.Carts.Load(key)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	drafts := partition(entries, displayName)

	outcomes := make([]CheckoutOutcome, 0, len(drafts))
	for _, draft := range drafts {
		outcome := CheckoutOutcome{Restaurant: draft.Restaurant, Success: true}
		if err := s.Submitter.Submit(key, draft); err != nil {
			outcome.Success = false
			outcome.Error = err.Error()
			s.Log.Warn("order submission failed",
				zap.String("restaurant", draft.Restaurant), zap.Error(err))
			metrics.OrdersSubmitted.WithLabelValues(draft.Restaurant, "error").Inc()
		} else {
			metrics.OrdersSubmitted.WithLabelValues(draft.Restaurant, "ok").Inc()
		}
		outcomes = append(outcomes, outcome)
	}

	if err := s.Carts.Clear(key); err != nil {
		s.Log.Error("clearing cart after checkout failed",
			zap.String("key", key), zap.Error(err))
	}

	return outcomes, nil
}

// partition groups cart entries by restaurant, keeping first-seen order so two
// entries for the same restaurant land in one draft.
func partition(entries []entity.CartEntry, displayName string) []*OrderDraft {
	byRestaurant := make(map[string]*OrderDraft)
	var ordered []*OrderDraft

	for _, e := range entries {
		draft, ok := byRestaurant[e.Restaurant]
		if !ok {
			draft = &OrderDraft{CustomerName: displayName, Restaurant: e.Restaurant}
			byRestaurant[e.Restaurant] = draft
			ordered = append(ordered, draft)
		}
		draft.Items = append(draft.Items, OrderLine{ItemID: e.ItemID, Quantity: e.Quantity})
	}
	return ordered
}
