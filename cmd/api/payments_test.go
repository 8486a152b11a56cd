package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const callbackAck = "Callback received successfully"

func postCallback(t *testing.T, app *application, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/mpesa/callback", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	app.mpesaCallbackHandler(rr, req)
	return rr
}

func TestMpesaCallbackAlwaysAcknowledges(t *testing.T) {
	bodies := map[string]string{
		"malformed json":      `{not json`,
		"empty body":          ``,
		"empty object":        `{}`,
		"missing stkCallback": `{"Body":{}}`,
		"wrong shape":         `{"Body":{"stkCallback":"nope"}}`,
		"well formed": `{"Body":{"stkCallback":{"MerchantRequestID":"m-1","CheckoutRequestID":"c-1",
			"ResultCode":0,"ResultDesc":"The service request is processed successfully."}}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			app := newTestApplication(t, nil)
			rr := postCallback(t, app, body)

			if rr.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			if got := rr.Body.String(); got != callbackAck {
				t.Errorf("body = %q, want %q", got, callbackAck)
			}
		})
	}
}

func TestMpesaCallbackPersistsRecord(t *testing.T) {
	app := newTestApplication(t, nil)
	cbs := app.store.Callbacks.(*fakeCallbacksStore)

	body := `{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 500},
						{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`
	rr := postCallback(t, app, body)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if len(cbs.records) != 1 {
		t.Fatalf("persisted %d records, want 1", len(cbs.records))
	}

	rec := cbs.records[0]
	if rec.MerchantRequestID != "29115-34620561-1" {
		t.Errorf("MerchantRequestID = %q", rec.MerchantRequestID)
	}
	if rec.CheckoutRequestID != "ws_CO_191220191020363925" {
		t.Errorf("CheckoutRequestID = %q", rec.CheckoutRequestID)
	}
	if rec.ResultCode != 0 {
		t.Errorf("ResultCode = %d, want 0", rec.ResultCode)
	}
	if rec.ResultDesc != "The service request is processed successfully." {
		t.Errorf("ResultDesc = %q", rec.ResultDesc)
	}
	if !strings.Contains(string(rec.Metadata), "NLJ7RT61SV") {
		t.Errorf("metadata lost receipt number: %s", rec.Metadata)
	}
}

func TestMpesaCallbackFailedPaymentPersisted(t *testing.T) {
	app := newTestApplication(t, nil)
	cbs := app.store.Callbacks.(*fakeCallbacksStore)

	body := `{"Body":{"stkCallback":{"MerchantRequestID":"m-2","CheckoutRequestID":"c-2",
		"ResultCode":1032,"ResultDesc":"Request cancelled by user"}}}`
	postCallback(t, app, body)

	if len(cbs.records) != 1 {
		t.Fatalf("persisted %d records, want 1", len(cbs.records))
	}
	rec := cbs.records[0]
	if rec.ResultCode != 1032 {
		t.Errorf("ResultCode = %d, want 1032", rec.ResultCode)
	}
	if rec.Metadata != nil {
		t.Errorf("metadata = %s, want none", rec.Metadata)
	}
}

func TestMpesaCallbackDropsUnparseableBody(t *testing.T) {
	app := newTestApplication(t, nil)
	cbs := app.store.Callbacks.(*fakeCallbacksStore)

	postCallback(t, app, `<html>gateway error page</html>`)

	if len(cbs.records) != 0 {
		t.Errorf("persisted %d records from garbage body, want 0", len(cbs.records))
	}
}

func TestMpesaCallbackInsertFailureStillAcks(t *testing.T) {
	app := newTestApplication(t, nil)
	app.store.Callbacks.(*fakeCallbacksStore).insertErr = errors.New("connection refused")

	body := `{"Body":{"stkCallback":{"MerchantRequestID":"m-3","CheckoutRequestID":"c-3",
		"ResultCode":0,"ResultDesc":"ok"}}}`
	rr := postCallback(t, app, body)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != callbackAck {
		t.Errorf("body = %q, want %q", got, callbackAck)
	}
}
