package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"evently/internal/mpesa"
	"evently/internal/store"
)

// mpesaCallbackHandler godoc
//
//	@Summary		M-Pesa result callback
//	@Description	Receives the asynchronous STK push result from the gateway
//	@Tags			payments
//	@Accept			json
//	@Produce		plain
//	@Success		200	{string}	string	"Callback received successfully"
//	@Router			/payments/mpesa/callback [post]
//
// The gateway retries on any non-200 answer, so this handler acknowledges
// receipt unconditionally: a payload it cannot understand is logged and
// dropped, never bounced. The gateway does not sign these requests, and no
// verification is attempted here.
func (app *application) mpesaCallbackHandler(w http.ResponseWriter, r *http.Request) {
	defer app.acknowledgeCallback(w)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		app.logger.Errorw("failed to read callback body", "error", err.Error())
		return
	}

	var envelope mpesa.CallbackEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		app.logger.Errorw("invalid callback payload", "error", err.Error(), "body", string(body))
		return
	}

	cb := envelope.Body.StkCallback
	if cb == nil {
		app.logger.Errorw("callback missing stkCallback envelope", "body", string(body))
		return
	}

	app.logger.Infow("mpesa callback received",
		"merchant_request_id", cb.MerchantRequestID,
		"checkout_request_id", cb.CheckoutRequestID,
		"result_code", cb.ResultCode,
		"result_desc", cb.ResultDesc,
	)

	var metadata json.RawMessage
	if cb.CallbackMetadata != nil {
		metadata, _ = json.Marshal(cb.CallbackMetadata)
	}

	rec := &store.CallbackRecord{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
		Metadata:          metadata,
	}

	// Persistence failures are logged, not retried; the 200 goes out
	// regardless.
	if err := app.store.Callbacks.Insert(r.Context(), rec); err != nil {
		app.logger.Errorw("failed to persist callback record", "error", err.Error())
	}
}

func (app *application) acknowledgeCallback(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("Callback received successfully")); err != nil {
		app.logger.Errorw("failed to write callback ack", "error", err.Error())
	}
}

// listCallbacksHandler godoc
//
//	@Summary		List payment callbacks
//	@Description	Lists recently received M-Pesa callback records (admin only)
//	@Tags			payments
//	@Produce		json
//	@Param			limit	query		int	false	"Max records, default 50"
//	@Success		200		{array}		store.CallbackRecord
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/payments/mpesa/callbacks [get]
func (app *application) listCallbacksHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := app.store.Callbacks.List(r.Context(), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if records == nil {
		records = []store.CallbackRecord{}
	}

	if err := app.jsonResponse(w, http.StatusOK, records); err != nil {
		app.internalServerError(w, r, err)
	}
}
