package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository, menuRepo *repository.MenuRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo, MenuRepo: menuRepo}
}

type OrderItemIn struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=1"`
}

type CreateOrderReq struct {
	CustomerName  string        `json:"customerName"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	Restaurant    string        `json:"restaurant" binding:"required"`
	Items         []OrderItemIn `json:"items" binding:"required,min=1"`
	EstimatedTime int           `json:"estimatedTime"`
}

// Create validates the restaurant and items, snapshots current menu prices
// into the order lines and writes everything in one transaction.
func (s *OrderService) Create(userKey string, req *CreateOrderReq) (*entity.Order, error) {
	ok, err := s.RestRepo.Exists(req.Restaurant)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	type line struct {
		itemID    string
		name      string
		qty       int
		unitPrice int64
	}
	lines := make([]line, 0, len(req.Items))
	var subtotal int64
	for _, it := range req.Items {
		m, err := s.MenuRepo.FindByID(req.Restaurant, it.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMenuItemNotFound
			}
			return nil, err
		}
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, line{itemID: m.ID, name: m.Name, qty: qty, unitPrice: m.Price})
		subtotal += m.Price * int64(qty)
	}

	order := entity.Order{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		EstimatedTime: req.EstimatedTime,
		Status:        entity.OrderStatusPending,
		Subtotal:      subtotal,
		RestaurantID:  req.Restaurant,
		UserKey:       userKey,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				ItemID:    l.itemID,
				Name:      l.name,
				Qty:       l.qty,
				UnitPrice: l.unitPrice,
				Total:     l.unitPrice * int64(l.qty),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Submit adapts an order draft from checkout into a create request. Phone,
// address and estimated time are not collected at checkout.
func (s *OrderService) Submit(userKey string, draft *OrderDraft) error {
	req := &CreateOrderReq{
		CustomerName: draft.CustomerName,
		Restaurant:   draft.Restaurant,
	}
	for _, l := range draft.Items {
		req.Items = append(req.Items, OrderItemIn{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	_, err := s.Create(userKey, req)
	return err
}

func (s *OrderService) ListAll(limit int) ([]entity.Order, error) {
	return s.Repo.ListAll(limit)
}

func (s *OrderService) ListForUser(userKey string, limit int) ([]entity.Order, error) {
	return s.Repo.ListForUser(userKey, limit)
}

func (s *OrderService) Detail(id uint) (*entity.Order, error) {
	return s.Repo.FindByID(id)
}

var validStatuses = map[string]bool{
	entity.OrderStatusPending:   true,
	entity.OrderStatusPreparing: true,
	entity.OrderStatusReady:     true,
	entity.OrderStatusCompleted: true,
	entity.OrderStatusCancelled: true,
}

func (s *OrderService) UpdateStatus(id uint, status string) error {
	if !validStatuses[status] {
		return errors.New("invalid status")
	}
	return s.Repo.UpdateStatus(id, status)
}
