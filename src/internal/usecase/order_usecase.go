package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"flower-shop-service/src/internal/entity"
	"flower-shop-service/src/internal/gateway/messaging"
	"flower-shop-service/src/internal/model"
	"flower-shop-service/src/internal/model/converter"
	"flower-shop-service/src/internal/repository"
	"flower-shop-service/src/pkg/databases/mysql"
	httpError "flower-shop-service/src/pkg/http-error"
	"flower-shop-service/src/pkg/log"
	"flower-shop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// pickupAddressSentinel is stored as the receiver address of pickup orders.
// "At the store", matching what the storefront displays.
const pickupAddressSentinel = "ที่ร้าน"

// orderCodeMaxAttempts bounds the collision-retry loop. The code space is
// 9*10^7, so more than a couple of retries means something is badly wrong.
const orderCodeMaxAttempts = 10

type OrderUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	OrderRepository repository.OrderStore
	Config          *viper.Viper
	OrderProducer   *messaging.OrderProducer

	// CodeRand draws the 8-digit part of an order code. Overridable in tests
	// to force collisions.
	CodeRand func() int
}

func NewOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderRepository repository.OrderStore,
	cfg *viper.Viper,
	orderProducer *messaging.OrderProducer,
) *OrderUseCase {
	return &OrderUseCase{
		Log:             logger,
		Validate:        validate,
		OrderRepository: orderRepository,
		Config:          cfg,
		OrderProducer:   orderProducer,
		CodeRand: func() int {
			return 10000000 + rand.Intn(90000000)
		},
	}
}

func (c *OrderUseCase) SubmitOrder(ctx context.Context, request *model.SubmitOrderRequest) utils.Result {
	var result utils.Result

	if err := c.validateSubmitRequest(request); err != nil {
		result.Error = err
		return result
	}

	var response model.SubmitOrderResponse
	var resolvedBranchID *int64
	err := c.OrderRepository.Transact(ctx, func(store repository.OrderTxStore) error {
		branchID, err := c.resolveBranch(ctx, store, request)
		if err != nil {
			return err
		}
		resolvedBranchID = branchID

		customerID, err := c.resolveCustomer(ctx, store, &request.Customer)
		if err != nil {
			return err
		}

		addressID, err := c.insertReceiverAddress(ctx, store, request, customerID, branchID)
		if err != nil {
			return err
		}

		orderID, orderCode, err := c.insertOrderWithFreshCode(ctx, store, request, branchID, customerID, addressID)
		if err != nil {
			return err
		}

		if err := c.insertPayment(ctx, store, orderID, &request.Payment); err != nil {
			return err
		}

		for i := range request.Items {
			if err := c.insertCartItem(ctx, store, orderID, branchID, &request.Items[i]); err != nil {
				return err
			}
		}

		response = model.SubmitOrderResponse{OrderID: orderID, OrderCode: orderCode}
		return nil
	})
	if err != nil {
		var commonErr *httpError.CommonError
		if errors.As(err, &commonErr) {
			result.Error = commonErr
			return result
		}
		c.Log.Error("SubmitOrder-transact", err.Error(), "request", utils.ConvertString(request))
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create order"
		errObj.Detail = err.Error()
		result.Error = errObj
		return result
	}

	c.Log.Info("SubmitOrder", "order created", "orderCode", response.OrderCode)
	c.publishOrderCreated(&response, request, resolvedBranchID)

	result.Data = response
	return result
}

// validateSubmitRequest rejects malformed payloads before any connection is
// taken from the pool. The payment payload is a tagged union; the evidence
// matching the method must be present.
func (c *OrderUseCase) validateSubmitRequest(request *model.SubmitOrderRequest) error {
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		c.Log.Error("SubmitOrder-validation", err.Error(), "request", utils.ConvertString(request))
		return errObj
	}

	switch request.Payment.Method {
	case model.PaymentMethodCash:
		// no evidence
	case model.PaymentMethodTransfer:
		if request.Payment.Transfer == nil {
			errObj := httpError.NewBadRequest()
			errObj.Message = "transfer payment requires transfer evidence"
			return errObj
		}
	case model.PaymentMethodCredit:
		if request.Payment.Card == nil {
			errObj := httpError.NewBadRequest()
			errObj.Message = "credit payment requires card evidence"
			return errObj
		}
	default:
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("unknown payment method %q", request.Payment.Method)
		return errObj
	}
	return nil
}

// resolveBranch degrades to a nil branch when neither id nor name resolves.
// Orders without a branch are accepted; downstream consumers must not assume
// a non-null branch.
func (c *OrderUseCase) resolveBranch(ctx context.Context, store repository.OrderTxStore, request *model.SubmitOrderRequest) (*int64, error) {
	if request.BranchID != nil {
		return request.BranchID, nil
	}
	if request.BranchName == "" {
		return nil, nil
	}
	branchID, err := store.FindBranchIDByName(ctx, request.BranchName)
	if err != nil {
		return nil, err
	}
	if branchID == nil {
		c.Log.Warn("SubmitOrder-resolveBranch", "unknown branch name, order proceeds without branch", "branch", request.BranchName)
	}
	return branchID, nil
}

// resolveCustomer dedups by phone. Orders without a phone always create a
// fresh customer row.
func (c *OrderUseCase) resolveCustomer(ctx context.Context, store repository.OrderTxStore, customer *model.CustomerPayload) (int64, error) {
	if customer.Phone != "" {
		customerID, err := store.FindCustomerIDByPhone(ctx, customer.Phone)
		if err != nil {
			return 0, err
		}
		if customerID != nil {
			return *customerID, nil
		}
	}
	return store.InsertCustomer(ctx, nilIfEmpty(customer.Name), nilIfEmpty(customer.Phone))
}

func (c *OrderUseCase) insertReceiverAddress(ctx context.Context, store repository.OrderTxStore, request *model.SubmitOrderRequest, customerID int64, branchID *int64) (int64, error) {
	receiver := request.Receiver
	if receiver == nil {
		receiver = &model.ReceiverPayload{}
	}

	provinceID := receiver.ProvinceID
	if provinceID == nil && branchID != nil {
		var err error
		provinceID, err = store.FindBranchProvinceID(ctx, *branchID)
		if err != nil {
			return 0, err
		}
	}

	name := receiver.Name
	if name == "" {
		name = request.Customer.Name
	}
	phone := receiver.Phone
	if phone == "" {
		phone = request.Customer.Phone
	}
	address := receiver.Address
	if request.Pickup {
		address = pickupAddressSentinel
	}

	row := entity.CustomerAddress{
		CustomerID:      customerID,
		ProvinceID:      provinceID,
		ReceiverName:    nilIfEmpty(name),
		ReceiverPhone:   nilIfEmpty(phone),
		ReceiverAddress: nilIfEmpty(address),
	}
	if err := store.InsertCustomerAddress(ctx, &row); err != nil {
		return 0, err
	}
	return row.CustomerAddressID, nil
}

// insertOrderWithFreshCode draws order codes until one inserts cleanly. The
// pre-insert existence check keeps the common case to one round-trip; a
// duplicate-key violation on the unique order_code index (two submissions
// drawing the same free code concurrently) counts against the same attempt
// budget and just triggers another draw.
func (c *OrderUseCase) insertOrderWithFreshCode(ctx context.Context, store repository.OrderTxStore, request *model.SubmitOrderRequest, branchID *int64, customerID, addressID int64) (int64, string, error) {
	for attempt := 1; attempt <= orderCodeMaxAttempts; attempt++ {
		code := fmt.Sprintf("ORD%08d", c.CodeRand())

		exists, err := store.OrderCodeExists(ctx, code)
		if err != nil {
			return 0, "", err
		}
		if exists {
			continue
		}

		order := entity.Order{
			BranchID:          branchID,
			CustomerID:        customerID,
			CustomerAddressID: addressID,
			PromotionID:       request.PromotionID,
			CustomerNote:      nilIfEmpty(request.CustomerNote),
			OrderCode:         code,
			OrderStatus:       entity.OrderStatusReceived,
			TotalAmount:       request.TotalAmount,
		}
		orderID, err := store.InsertOrder(ctx, &order)
		if err != nil {
			if mysql.IsDuplicateEntry(err) {
				continue
			}
			return 0, "", err
		}
		return orderID, code, nil
	}

	return 0, "", fmt.Errorf("could not allocate a unique order code after %d attempts", orderCodeMaxAttempts)
}

func (c *OrderUseCase) insertPayment(ctx context.Context, store repository.OrderTxStore, orderID int64, payment *model.PaymentPayload) error {
	switch payment.Method {
	case model.PaymentMethodCash:
		_, err := store.InsertPayment(ctx, orderID, entity.PaymentMethodCash)
		return err

	case model.PaymentMethodTransfer:
		exists, err := store.TransRefExists(ctx, payment.Transfer.TransRef)
		if err != nil {
			return err
		}
		if exists {
			errObj := httpError.NewConflict()
			errObj.Message = "payment slip already used"
			errObj.Detail = fmt.Sprintf("transaction reference %s already recorded", payment.Transfer.TransRef)
			return errObj
		}

		paymentID, err := store.InsertPayment(ctx, orderID, entity.PaymentMethodTransfer)
		if err != nil {
			return err
		}
		evidence := entity.PaymentEvidence{
			PaymentID:      paymentID,
			TransRef:       payment.Transfer.TransRef,
			SenderName:     nilIfEmpty(payment.Transfer.SenderName),
			SenderBank:     nilIfEmpty(payment.Transfer.SenderBank),
			TransTimestamp: c.parseTransTimestamp(payment.Transfer.TransTimestamp),
			RawPayload:     payment.Transfer.RawPayload,
		}
		if err := store.InsertPaymentEvidence(ctx, &evidence); err != nil {
			if mysql.IsDuplicateEntry(err) {
				errObj := httpError.NewConflict()
				errObj.Message = "payment slip already used"
				errObj.Detail = fmt.Sprintf("transaction reference %s already recorded", payment.Transfer.TransRef)
				return errObj
			}
			return err
		}
		return nil

	case model.PaymentMethodCredit:
		paymentID, err := store.InsertPayment(ctx, orderID, entity.PaymentMethodCredit)
		if err != nil {
			return err
		}
		evidence := entity.PaymentCardEvidence{
			PaymentID:        paymentID,
			MaskedCardNumber: utils.MaskCardNumber(payment.Card.CardNumber),
		}
		return store.InsertPaymentCardEvidence(ctx, &evidence)

	default:
		// unreachable, validateSubmitRequest checks the method
		return fmt.Errorf("unknown payment method %q", payment.Method)
	}
}

func (c *OrderUseCase) insertCartItem(ctx context.Context, store repository.OrderTxStore, orderID int64, branchID *int64, item *model.CartItemPayload) error {
	qty := item.Qty
	if qty == 0 {
		qty = 1
	}

	line := entity.CartLine{
		OrderID:    orderID,
		ProductID:  item.ProductID,
		Qty:        qty,
		PriceTotal: item.PriceTotal,
	}
	shoppingCartID, err := store.InsertCartLine(ctx, &line)
	if err != nil {
		return err
	}

	if branchID != nil {
		if err := store.ReserveStock(ctx, *branchID, item.ProductID, qty); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				errObj := httpError.NewUnprocessableEntity()
				errObj.Message = "insufficient stock"
				errObj.Detail = fmt.Sprintf("product %d is out of stock at branch %d", item.ProductID, *branchID)
				return errObj
			}
			return err
		}
	}

	if item.BouquetStyleID != nil {
		if err := store.InsertBouquetCustomization(ctx, shoppingCartID, *item.BouquetStyleID); err != nil {
			return err
		}
	}
	if item.VaseColorID != nil {
		if err := store.InsertVaseCustomization(ctx, shoppingCartID, *item.VaseColorID); err != nil {
			return err
		}
	}
	for _, flowerTypeID := range item.FlowerTypeIDs {
		if err := store.InsertFlowerDetail(ctx, shoppingCartID, flowerTypeID); err != nil {
			return err
		}
	}
	return nil
}

// publishOrderCreated is best effort; the order is already committed and a
// broker hiccup must not fail the checkout. branchID is the id the
// transaction actually stored, which may have been resolved from a name.
func (c *OrderUseCase) publishOrderCreated(response *model.SubmitOrderResponse, request *model.SubmitOrderRequest, branchID *int64) {
	if c.OrderProducer == nil {
		return
	}
	event := converter.OrderToEvent(response.OrderID, response.OrderCode, branchID, request)
	if err := c.OrderProducer.SendOrderCreated(event); err != nil {
		c.Log.Error("SubmitOrder-publish", fmt.Sprintf("failed to publish order created event: %v", err), "orderCode", response.OrderCode)
	}
}

func (c *OrderUseCase) TrackOrder(ctx context.Context, request *model.TrackOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		c.Log.Error("TrackOrder-validation", err.Error(), "request", utils.ConvertString(request))
		result.Error = errObj
		return result
	}

	detail, err := c.OrderRepository.FindOrderByCode(ctx, request.OrderCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("order %s not found", request.OrderCode)
			result.Error = errObj
			return result
		}
		c.Log.Error("TrackOrder-FindOrderByCode", err.Error(), "orderCode", request.OrderCode)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	lines, err := c.OrderRepository.FindCartLinesByOrderID(ctx, detail.OrderID)
	if err != nil {
		c.Log.Error("TrackOrder-FindCartLines", err.Error(), "orderCode", request.OrderCode)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = model.TrackOrderResponse{
		Order:   converter.OrderDetailToSummary(detail),
		Records: converter.CartLinesToViews(lines),
	}
	return result
}

// allowedTransitions maps a target status to the statuses it may come from.
// Cashier rejects, florist prepares, rider ships and delivers.
var allowedTransitions = map[string][]string{
	entity.OrderStatusReceived:  {entity.OrderStatusPending},
	entity.OrderStatusPreparing: {entity.OrderStatusReceived},
	entity.OrderStatusShipping:  {entity.OrderStatusPreparing},
	entity.OrderStatusDelivered: {entity.OrderStatusShipping},
	entity.OrderStatusRejected:  {entity.OrderStatusPending, entity.OrderStatusReceived},
}

func (c *OrderUseCase) UpdateOrderStatus(ctx context.Context, request *model.UpdateOrderStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		c.Log.Error("UpdateOrderStatus-validation", err.Error(), "request", utils.ConvertString(request))
		result.Error = errObj
		return result
	}

	detail, err := c.OrderRepository.FindOrderByCode(ctx, request.OrderCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("order %s not found", request.OrderCode)
			result.Error = errObj
			return result
		}
		c.Log.Error("UpdateOrderStatus-FindOrderByCode", err.Error(), "orderCode", request.OrderCode)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if !transitionAllowed(detail.OrderStatus, request.Status) {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = fmt.Sprintf("cannot move order from %s to %s", detail.OrderStatus, request.Status)
		result.Error = errObj
		return result
	}

	affected, err := c.OrderRepository.UpdateOrderStatus(ctx, request.OrderCode, detail.OrderStatus, request.Status)
	if err != nil {
		c.Log.Error("UpdateOrderStatus-update", err.Error(), "orderCode", request.OrderCode)
		result.Error = httpError.NewInternalServerError()
		return result
	}
	if affected == 0 {
		// someone moved the order between our read and the update
		errObj := httpError.NewConflict()
		errObj.Message = "order status changed concurrently, retry"
		result.Error = errObj
		return result
	}

	c.Log.Info("UpdateOrderStatus", fmt.Sprintf("order moved to %s", request.Status), "orderCode", request.OrderCode)
	result.Data = model.UpdateOrderStatusResponse{
		OrderCode: request.OrderCode,
		Status:    request.Status,
	}
	return result
}

// CheckSlipDuplicate reports whether a transfer reference was already
// recorded. The slip verification endpoint calls this so the storefront can
// warn before checkout; the submission transaction re-checks regardless.
func (c *OrderUseCase) CheckSlipDuplicate(ctx context.Context, transRef string) (bool, error) {
	return c.OrderRepository.TransRefExists(ctx, transRef)
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[to] {
		if allowed == from {
			return true
		}
	}
	return false
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (c *OrderUseCase) parseTransTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.Log.Warn("SubmitOrder-transTimestamp", "unparseable transfer timestamp, evidence stored without it", "transTimestamp", raw)
		return nil
	}
	return &ts
}
