package http

import (
	"io"

	"flower-shop-service/src/internal/gateway/slipverify"
	"flower-shop-service/src/internal/model"
	"flower-shop-service/src/internal/usecase"
	httpError "flower-shop-service/src/pkg/http-error"
	"flower-shop-service/src/pkg/log"
	"flower-shop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log        log.Log
	SlipVerify *slipverify.Client
	UseCase    *usecase.OrderUseCase
}

func NewPaymentController(slipVerify *slipverify.Client, useCase *usecase.OrderUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:        logger,
		SlipVerify: slipVerify,
		UseCase:    useCase,
	}
}

// CheckSlip uploads a payment-slip image to the external verifier and
// returns the verification result together with a duplicate-reference flag.
// The flag is advisory; the submission transaction re-checks the reference.
func (c *PaymentController) CheckSlip(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("files")
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "missing slip file"
		return utils.ResponseError(errObj, ctx)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	verification, err := c.SlipVerify.Verify(ctx.Context(), fileHeader.Filename, content)
	if err != nil {
		c.Log.Error("PaymentController.CheckSlip", err.Error(), "verify", fileHeader.Filename)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "slip verification failed"
		errObj.Detail = err.Error()
		return utils.ResponseError(errObj, ctx)
	}

	duplicate := false
	if verification.TransRef != "" {
		duplicate, err = c.UseCase.CheckSlipDuplicate(ctx.Context(), verification.TransRef)
		if err != nil {
			c.Log.Error("PaymentController.CheckSlip", err.Error(), "duplicateCheck", verification.TransRef)
			return utils.ResponseError(err, ctx)
		}
	}

	return utils.Response(model.CheckSlipResponse{
		Verification: *verification,
		Duplicate:    duplicate,
	}, "Slip Checked", fiber.StatusOK, ctx)
}
