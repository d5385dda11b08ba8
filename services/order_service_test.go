package services

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

func newTestOrders(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedCafes(t, db)
	items := []*entity.MenuItem{
		menuItem("p1", "hangout-cafe", "Pizza", 299),
		menuItem("c1", "hangout-cafe", "Coffee", 89),
		menuItem("d1", "golden-bakery", "Donut", 49),
	}
	for _, it := range items {
		if err := db.Create(it).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
	svc := NewOrderService(db, repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db), repository.NewMenuRepository(db))
	return svc, db
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	svc, _ := newTestOrders(t)

	order, err := svc.Create("u1", &CreateOrderReq{
		CustomerName: "Alice",
		Restaurant:   "hangout-cafe",
		Items: []OrderItemIn{
			{ItemID: "p1", Quantity: 2},
			{ItemID: "c1", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if order.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.Subtotal != 2*299+89 {
		t.Errorf("subtotal = %d, want %d", order.Subtotal, 2*299+89)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Items))
	}
	if order.Items[0].UnitPrice != 299 || order.Items[0].Total != 598 {
		t.Errorf("unexpected first line: %+v", order.Items[0])
	}
}

func TestCreateOrderUnknownRestaurant(t *testing.T) {
	svc, _ := newTestOrders(t)

	_, err := svc.Create("u1", &CreateOrderReq{
		Restaurant: "nope",
		Items:      []OrderItemIn{{ItemID: "p1", Quantity: 1}},
	})
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Errorf("got %v, want ErrRestaurantNotFound", err)
	}
}

func TestCreateOrderItemFromOtherRestaurant(t *testing.T) {
	svc, db := newTestOrders(t)

	_, err := svc.Create("u1", &CreateOrderReq{
		Restaurant: "hangout-cafe",
		Items:      []OrderItemIn{{ItemID: "d1", Quantity: 1}}, // golden-bakery item
	})
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("got %v, want ErrMenuItemNotFound", err)
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("failed create persisted %d orders", count)
	}
}

func TestSubmitDraftCreatesOrder(t *testing.T) {
	svc, _ := newTestOrders(t)

	draft := &OrderDraft{
		CustomerName: "Alice",
		Restaurant:   "hangout-cafe",
		Items:        []OrderLine{{ItemID: "p1", Quantity: 1}},
	}
	if err := svc.Submit("u1", draft); err != nil {
		t.Fatalf("submit: %v", err)
	}

	orders, err := svc.ListForUser("u1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].RestaurantID != "hangout-cafe" {
		t.Errorf("unexpected orders: %+v", orders)
	}
}

func TestOrdersAreScopedToUser(t *testing.T) {
	svc, _ := newTestOrders(t)

	req := &CreateOrderReq{
		Restaurant: "hangout-cafe",
		Items:      []OrderItemIn{{ItemID: "p1", Quantity: 1}},
	}
	if _, err := svc.Create("u1", req); err != nil {
		t.Fatalf("create: %v", err)
	}

	others, err := svc.ListForUser("u2", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(others) != 0 {
		t.Errorf("u2 sees u1's orders: %+v", others)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestOrders(t)

	order, err := svc.Create("u1", &CreateOrderReq{
		Restaurant: "hangout-cafe",
		Items:      []OrderItemIn{{ItemID: "p1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateStatus(order.ID, entity.OrderStatusPreparing); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := svc.Detail(order.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Status != entity.OrderStatusPreparing {
		t.Errorf("status = %q, want preparing", got.Status)
	}

	if err := svc.UpdateStatus(order.ID, "burnt"); err == nil {
		t.Error("invalid status accepted")
	}
}
