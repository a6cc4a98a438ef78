package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 注文番号を作る約束
type OrderNumberGenerator interface {
	NewOrderNumber(now time.Time) string
}

// WKプレフィックス＋日付＋UUID先頭6桁。
// 元のタイムスタンプ下6桁方式はバースト時に衝突するので置き換え。
// DB側のunique indexが最後の砦。
type WKOrderNumbers struct{}

func (WKOrderNumbers) NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("WK%s-%s", now.Format("060102"), suffix)
}

type OrderUsecase struct {
	tx      repo.TransactionManager
	orders  repo.OrderRepository
	items   repo.OrderItemRepository
	numbers OrderNumberGenerator
	clock   Clock
	log     zerolog.Logger
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	numbers OrderNumberGenerator,
	clock Clock,
	log zerolog.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		tx:      tx,
		orders:  orders,
		items:   items,
		numbers: numbers,
		clock:   clock,
		log:     log,
	}
}

// カート1行分の入力
type CartLine struct {
	ProductID       int64 `json:"productId"`
	UnitPrice       int64 `json:"unitPrice"`
	Quantity        int64 `json:"quantity"`
	DiscountPercent int64 `json:"discountPercent"`
}

type SubmitOrderInput struct {
	UserID        int64
	TableID       *int64
	Items         []CartLine
	PaymentMethod string
	Notes         string
}

type SubmitOrderOutput struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
	TotalAmount int64  `json:"totalAmount"`
	FinalAmount int64  `json:"finalAmount"`
	Status      string `json:"status"`
}

// orderTotalsは確定前に計算した合計。
// final = total - discount が常に成り立つ。
type orderTotals struct {
	Total    int64
	Discount int64
	Final    int64
}

func computeTotals(lines []CartLine) orderTotals {
	var t orderTotals
	for _, l := range lines {
		raw := l.UnitPrice * l.Quantity
		disc := model.LineDiscount(l.UnitPrice, l.Quantity, l.DiscountPercent)
		t.Total += raw
		t.Discount += disc
	}
	t.Final = t.Total - t.Discount
	return t
}

func validateLines(lines []CartLine) error {
	for _, l := range lines {
		if l.ProductID <= 0 {
			return NewHTTPError(http.StatusBadRequest, "invalid product id")
		}
		if l.Quantity < 1 {
			return NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if l.UnitPrice < 0 {
			return NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		if l.DiscountPercent < 0 || l.DiscountPercent > 100 {
			return NewHTTPError(http.StatusBadRequest, "invalid discount")
		}
	}
	return nil
}

// Submitは注文確定の本体。ヘッダ＋明細＋ロイヤルティ更新を
// 1トランザクションで書き、途中で失敗したら全て巻き戻す。
func (u *OrderUsecase) Submit(ctx context.Context, in SubmitOrderInput) (SubmitOrderOutput, error) {
	// 入力検証は書き込みより前。失敗時は副作用ゼロ。
	if in.UserID <= 0 || len(in.Items) == 0 {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Data pesanan tidak lengkap")
	}
	if err := validateLines(in.Items); err != nil {
		return SubmitOrderOutput{}, err
	}
	if in.TableID != nil && *in.TableID <= 0 {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid table id")
	}

	pm := model.PaymentMethod(strings.TrimSpace(in.PaymentMethod))
	if pm == "" {
		pm = model.PaymentCash
	}

	totals := computeTotals(in.Items)
	now := u.clock.Now()
	number := u.numbers.NewOrderNumber(now)

	orderItems := make([]model.OrderItem, 0, len(in.Items))
	for _, l := range in.Items {
		orderItems = append(orderItems, model.OrderItem{
			ProductID:       l.ProductID,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			TotalPrice:      model.LineTotal(l.UnitPrice, l.Quantity, l.DiscountPercent),
			CreatedAt:       now,
		})
	}

	var out SubmitOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderID, err := r.Orders().Create(ctx, model.Order{
			OrderNumber:    number,
			UserID:         in.UserID,
			TableID:        in.TableID,
			TotalAmount:    totals.Total,
			DiscountAmount: totals.Discount,
			FinalAmount:    totals.Final,
			PaymentMethod:  pm,
			Status:         model.OrderStatusPending,
			Notes:          in.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			u.log.Error().Err(err).Int64("user_id", in.UserID).Msg("create order failed")
			return NewHTTPError(http.StatusInternalServerError, msgServerError)
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			u.log.Error().Err(err).Int64("order_id", orderID).Msg("create order items failed")
			return NewHTTPError(http.StatusInternalServerError, msgServerError)
		}

		// 実際に請求する額（final）でポイントを付ける
		if err := r.Loyalty().Accrue(ctx, in.UserID, totals.Final, now); err != nil {
			u.log.Error().Err(err).Int64("user_id", in.UserID).Msg("loyalty accrual failed")
			return NewHTTPError(http.StatusInternalServerError, msgServerError)
		}

		out = SubmitOrderOutput{
			ID:          orderID,
			OrderNumber: number,
			TotalAmount: totals.Total,
			FinalAmount: totals.Final,
			Status:      string(model.OrderStatusPending),
		}
		return nil
	})

	if err != nil {
		return SubmitOrderOutput{}, err
	}

	u.log.Info().
		Int64("order_id", out.ID).
		Str("order_number", out.OrderNumber).
		Int64("final_amount", out.FinalAmount).
		Msg("order created")

	return out, nil
}

type OrderListItem struct {
	ID            int64     `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	TableNumber   *int      `json:"tableNumber"`
	TotalAmount   int64     `json:"totalAmount"`
	FinalAmount   int64     `json:"finalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

const defaultOrderListLimit = 20

func (u *OrderUsecase) ListRecent(ctx context.Context, limit int) ([]OrderListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultOrderListLimit
	}

	orders, err := u.orders.ListRecent(ctx, limit)
	if err != nil {
		u.log.Error().Err(err).Msg("list orders failed")
		return nil, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	out := make([]OrderListItem, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderListItem(o))
	}
	return out, nil
}

type OrderItemOutput struct {
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	ProductImage    string `json:"productImage"`
	Quantity        int64  `json:"quantity"`
	UnitPrice       int64  `json:"unitPrice"`
	DiscountPercent int64  `json:"discountPercent"`
	TotalPrice      int64  `json:"totalPrice"`
}

type OrderDetailOutput struct {
	OrderListItem
	DiscountAmount int64             `json:"discountAmount"`
	Notes          string            `json:"notes"`
	Items          []OrderItemOutput `json:"items"`
}

// GetDetailは注文ヘッダ＋明細を返す。
// staffでない場合、他人の注文は「存在しない扱い」にする。
func (u *OrderUsecase) GetDetail(ctx context.Context, orderID int64, requesterID int64, staff bool) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Error().Err(err).Int64("order_id", orderID).Msg("find order failed")
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}
	if !staff && o.UserID != requesterID {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	items, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		u.log.Error().Err(err).Int64("order_id", orderID).Msg("list order items failed")
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			ProductImage:    it.ProductImage,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TotalPrice:      it.TotalPrice,
		})
	}

	return OrderDetailOutput{
		OrderListItem:  toOrderListItem(o),
		DiscountAmount: o.DiscountAmount,
		Notes:          o.Notes,
		Items:          outItems,
	}, nil
}

// 受け付ける状態遷移先
var allowedStatuses = map[model.OrderStatus]struct{}{
	model.OrderStatusPending:   {},
	model.OrderStatusConfirmed: {},
	model.OrderStatusPreparing: {},
	model.OrderStatusReady:     {},
	model.OrderStatusCompleted: {},
	model.OrderStatusCancelled: {},
}

func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s := model.OrderStatus(strings.TrimSpace(status))
	if _, ok := allowedStatuses[s]; !ok {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orders.UpdateStatus(ctx, orderID, s)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Error().Err(err).Int64("order_id", orderID).Msg("update order status failed")
		return NewHTTPError(http.StatusInternalServerError, msgServerError)
	}
	return nil
}

func toOrderListItem(o repo.OrderSummary) OrderListItem {
	return OrderListItem{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		TableNumber:   o.TableNumber,
		TotalAmount:   o.TotalAmount,
		FinalAmount:   o.FinalAmount,
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	}
}
