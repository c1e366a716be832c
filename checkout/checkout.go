// Package checkout prices the cart and turns it into orders. Pricing is
// pure arithmetic over the cart lines, the applied coupon and the shipping
// policy; PlaceOrder is the only operation that mutates more than one store.
package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MuhammadYaafay/storefront-core/cart"
	"github.com/MuhammadYaafay/storefront-core/events"
	"github.com/MuhammadYaafay/storefront-core/models"
	"github.com/MuhammadYaafay/storefront-core/orders"
	"github.com/MuhammadYaafay/storefront-core/wallet"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidCoupon = errors.New("invalid coupon code")
)

type Service struct {
	mu      sync.Mutex
	cart    *cart.Store
	orders  *orders.Store
	wallet  *wallet.Store
	coupons map[string]decimal.Decimal // keyed by upper-case code
	applied *models.Coupon

	shipping decimal.Decimal
	delay    time.Duration
	bus      *events.Bus
}

func NewService(c *cart.Store, o *orders.Store, w *wallet.Store, coupons map[string]decimal.Decimal, shipping decimal.Decimal, delay time.Duration, bus *events.Bus) *Service {
	if coupons == nil {
		coupons = DefaultCoupons()
	}
	return &Service{
		cart:     c,
		orders:   o,
		wallet:   w,
		coupons:  coupons,
		shipping: shipping,
		delay:    delay,
		bus:      bus,
	}
}

// Quote is the priced view of the current cart.
type Quote struct {
	ItemCount int
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
}

// ApplyCoupon looks the code up case-insensitively and makes it the active
// coupon, replacing any prior one. Unknown codes leave state untouched.
func (s *Service) ApplyCoupon(code string) (models.Coupon, error) {
	canonical := normalizeCode(code)
	discount, ok := s.coupons[canonical]
	if !ok {
		s.bus.Error("Invalid coupon code", "")
		return models.Coupon{}, ErrInvalidCoupon
	}
	coupon := models.Coupon{Code: canonical, Discount: discount}

	s.mu.Lock()
	s.applied = &coupon
	s.mu.Unlock()

	s.bus.Success("Coupon applied!", "You saved $"+discount.StringFixed(2))
	return coupon, nil
}

// RemoveCoupon clears the active coupon; the discount goes back to zero.
func (s *Service) RemoveCoupon() {
	s.mu.Lock()
	removed := s.applied != nil
	s.applied = nil
	s.mu.Unlock()
	if removed {
		s.bus.Info("Coupon removed", "")
	}
}

// AppliedCoupon returns a copy of the active coupon, or nil.
func (s *Service) AppliedCoupon() *models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applied == nil {
		return nil
	}
	c := *s.applied
	return &c
}

// Quote prices the current cart: total = subtotal - discount + shipping.
// The discount never pushes the total below the shipping cost, so a coupon
// larger than the cart cannot produce a negative charge.
func (s *Service) Quote() Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quoteLocked()
}

func (s *Service) quoteLocked() Quote {
	q := Quote{
		ItemCount: s.cart.ItemCount(),
		Subtotal:  s.cart.Subtotal(),
		Shipping:  s.shipping,
	}
	if s.applied != nil {
		q.Discount = s.applied.Discount
	}
	q.Total = q.Subtotal.Sub(q.Discount).Add(q.Shipping)
	if q.Total.LessThan(q.Shipping) {
		q.Total = q.Shipping
	}
	return q
}

// PlaceOrder snapshots the cart into a new pending order and clears the
// cart, both before returning. Preconditions are checked before the
// simulated processing delay; a failed precondition changes nothing.
func (s *Service) PlaceOrder(user *models.User, address models.Address, method models.PaymentMethod) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.bus.Error("Cart is empty", "")
		return nil, ErrEmptyCart
	}

	q := s.quoteLocked()
	if method.Kind == models.PaymentWallet && s.wallet.Balance().LessThan(q.Total) {
		s.bus.Error("Insufficient wallet balance", "Please select another payment method")
		return nil, wallet.ErrInsufficientFunds
	}

	time.Sleep(s.delay)

	now := time.Now()
	order := models.Order{
		ID:              newOrderRef(),
		UserID:          ownerID(user),
		Items:           snapshotLines(lines),
		Subtotal:        q.Subtotal,
		Discount:        q.Discount,
		ShippingCost:    q.Shipping,
		Total:           q.Total,
		Status:          models.OrderStatusPending,
		ShippingAddress: address,
		PaymentMethod:   method.Name,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if s.applied != nil {
		order.CouponCode = s.applied.Code
	}

	if method.Kind == models.PaymentWallet {
		if err := s.wallet.Debit(q.Total, "Order Payment #"+order.ID); err != nil {
			s.bus.Error("Order failed", "Please try again")
			return nil, err
		}
	}

	// Append the order and empty the cart before returning so the two
	// mutations are never observed apart (the engine is single-actor and
	// placements are serialized on s.mu).
	s.orders.Append(order)
	s.cart.Clear()
	s.applied = nil

	s.bus.Success("Order placed successfully!", "Order #"+order.ID)
	return &order, nil
}

func snapshotLines(lines []models.CartLine) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
		})
	}
	return items
}

// newOrderRef builds a sortable, collision-free order reference.
func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func ownerID(user *models.User) string {
	if user != nil {
		return user.ID
	}
	return "1" // the app's fallback user
}
