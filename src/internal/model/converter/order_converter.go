package converter

import (
	"flower-shop-service/src/internal/entity"
	"flower-shop-service/src/internal/model"

	"github.com/google/uuid"
)

func OrderToEvent(orderID int64, orderCode string, branchID *int64, request *model.SubmitOrderRequest) *model.OrderCreatedEvent {
	return &model.OrderCreatedEvent{
		EventID:       uuid.NewString(),
		OrderID:       orderID,
		OrderCode:     orderCode,
		BranchID:      branchID,
		TotalAmount:   request.TotalAmount,
		PaymentMethod: request.Payment.Method,
	}
}

func OrderDetailToSummary(detail *entity.OrderDetail) model.OrderSummary {
	summary := model.OrderSummary{
		OrderID:     detail.OrderID,
		OrderCode:   detail.OrderCode,
		OrderStatus: detail.OrderStatus,
		TotalAmount: detail.TotalAmount,
	}
	if detail.CustomerNote != nil {
		summary.CustomerNote = *detail.CustomerNote
	}
	if detail.BranchName != nil {
		summary.BranchName = *detail.BranchName
	}
	if detail.ReceiverName != nil {
		summary.ReceiverName = *detail.ReceiverName
	}
	if detail.ReceiverPhone != nil {
		summary.ReceiverPhone = *detail.ReceiverPhone
	}
	if detail.ReceiverAddress != nil {
		summary.ReceiverAddress = *detail.ReceiverAddress
	}
	return summary
}

func CartLinesToViews(lines []entity.OrderCartLine) []model.CartLineView {
	views := make([]model.CartLineView, 0, len(lines))
	for _, line := range lines {
		view := model.CartLineView{
			ShoppingCartID:  line.ShoppingCartID,
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			ProductTypeName: line.ProductTypeName,
			Qty:             line.Qty,
			PriceTotal:      line.PriceTotal,
		}
		if line.Flowers != nil {
			view.Flowers = *line.Flowers
		}
		if line.VaseColorName != nil {
			view.VaseColorName = *line.VaseColorName
		}
		views = append(views, view)
	}
	return views
}
