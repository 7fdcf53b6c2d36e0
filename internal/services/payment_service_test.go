package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shootbook/internal/models/db_models"
	"shootbook/pkg/utils"
)

const testSecret = "sk_test_secret"

func sign(body string) string {
	mac := hmac.New(sha512.New, []byte(testSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func newPaymentFixture(secret string) (*paymentService, *orderFixture) {
	f := newOrderFixture()
	svc := NewPaymentService(PaystackConfig{SecretKey: secret}, f.svc, f.repo, zap.NewNop()).(*paymentService)
	return svc, f
}

func TestValidatePaymentReference(t *testing.T) {
	for _, ref := range []string{"T123456", "ref_2024.01-ab=", "abcdef"} {
		assert.NoError(t, ValidatePaymentReference(ref), ref)
	}
	for _, ref := range []string{"", "abc12", "white space", "semi;colon", string(make([]byte, 101))} {
		assert.ErrorIs(t, ValidatePaymentReference(ref), utils.ErrInvalidRequest, ref)
	}
}

func TestVerifySignature(t *testing.T) {
	svc, _ := newPaymentFixture(testSecret)
	body := `{"event":"charge.success"}`

	assert.NoError(t, svc.VerifySignature([]byte(body), sign(body)))
	assert.ErrorIs(t, svc.VerifySignature([]byte(body+" "), sign(body)), utils.ErrInvalidSignature)
	assert.ErrorIs(t, svc.VerifySignature([]byte(body), "not-hex"), utils.ErrInvalidSignature)
	assert.ErrorIs(t, svc.VerifySignature([]byte(body), ""), utils.ErrInvalidSignature)
}

func TestVerifySignature_MissingSecret(t *testing.T) {
	svc, _ := newPaymentFixture("")
	assert.False(t, svc.Enabled())
	assert.ErrorIs(t, svc.VerifySignature([]byte("{}"), sign("{}")), utils.ErrMissingConfig)
}

func TestHandleWebhook_BadSignatureDoesNothing(t *testing.T) {
	svc, f := newPaymentFixture(testSecret)
	body := `{"event":"charge.success","data":{"reference":"T1234567","metadata":{"order_id":"RAD-123456-ABC"}}}`

	_, err := svc.HandleWebhook(context.Background(), []byte(body), sign("other"))
	assert.ErrorIs(t, err, utils.ErrInvalidSignature)
	assert.Empty(t, f.notifier.messages)
	assert.Empty(t, f.repo.events)
}

func TestHandleWebhook_IgnoresOtherEvents(t *testing.T) {
	svc, f := newPaymentFixture(testSecret)
	body := `{"event":"transfer.success","data":{"reference":"T1234567"}}`

	out, err := svc.HandleWebhook(context.Background(), []byte(body), sign(body))
	require.NoError(t, err)
	assert.Equal(t, WebhookIgnored, out.Action)
	assert.Empty(t, f.notifier.messages)
}

func TestHandleWebhook_ConfirmsPendingOrder(t *testing.T) {
	svc, f := newPaymentFixture(testSecret)
	_, err := f.svc.ProcessOrder(context.Background(), nigeriaOrder(5000), StatusPending, nil)
	require.NoError(t, err)

	body := `{"event":"charge.success","data":{"reference":"T1234567","amount":500000,"metadata":{"order_id":"RAD-123456-ABC"}}}`
	out, err := svc.HandleWebhook(context.Background(), []byte(body), sign(body))
	require.NoError(t, err)
	assert.Equal(t, WebhookConfirmed, out.Action)
	assert.Equal(t, "RAD-123456-ABC", out.OrderID)
	require.NotNil(t, out.Result)
	assert.Equal(t, "confirmed", out.Result.Status)

	assert.Equal(t, db_models.OrderRecordConfirmed, f.repo.records["RAD-123456-ABC"].Status)
	require.Len(t, f.repo.events, 1)
	assert.Equal(t, WebhookConfirmed, f.repo.events[0].Outcome)
	assert.Equal(t, "paystack", f.repo.events[0].Provider)
}

func TestHandleWebhook_RecoversMissingOrder(t *testing.T) {
	svc, f := newPaymentFixture(testSecret)
	body := `{"event":"charge.success","data":{"reference":"T7654321","amount":10000,` +
		`"metadata":"{\"order_id\":\"RAD-123456-ABC\",\"order\":{\"orderId\":\"RAD-123456-ABC\",\"phone\":\"08031234567\",` +
		`\"category\":\"birthday\",\"packageId\":\"birthday-basic\",\"total\":\"100\"}}"}}`

	out, err := svc.HandleWebhook(context.Background(), []byte(body), sign(body))
	require.NoError(t, err)
	assert.Equal(t, WebhookRecovered, out.Action)
	require.NotNil(t, out.Result)
	assert.False(t, out.Result.Verified)
	assert.NotEmpty(t, out.Result.Warnings)

	rec := f.repo.records["RAD-123456-ABC"]
	require.NotNil(t, rec)
	assert.Equal(t, db_models.OrderRecordWebhookRecovery, rec.Status)
	assert.Equal(t, "T7654321", rec.PaymentReference)
}

func TestHandleWebhook_AlreadyConfirmed(t *testing.T) {
	svc, f := newPaymentFixture(testSecret)
	_, err := f.svc.ProcessOrder(context.Background(), nigeriaOrder(5000), StatusConfirmed, nil)
	require.NoError(t, err)
	sent := len(f.notifier.messages)

	body := `{"event":"charge.success","data":{"reference":"T1234567","metadata":{"order_id":"RAD-123456-ABC"}}}`
	out, err := svc.HandleWebhook(context.Background(), []byte(body), sign(body))
	require.NoError(t, err)
	assert.Equal(t, WebhookAlreadyConfirmed, out.Action)
	assert.Len(t, f.notifier.messages, sent)
}

func TestHandleWebhook_MissingOrderID(t *testing.T) {
	svc, f := newPaymentFixture(testSecret)
	body := `{"event":"charge.success","data":{"reference":"T1234567","metadata":""}}`

	out, err := svc.HandleWebhook(context.Background(), []byte(body), sign(body))
	require.NoError(t, err)
	assert.Equal(t, WebhookIgnored, out.Action)
	require.Len(t, f.repo.events, 1)
	assert.Equal(t, "missing order id", f.repo.events[0].Detail)
}

func TestHandleWebhook_MalformedOrderIDIgnored(t *testing.T) {
	for _, id := range []string{"FOO", "RAD-1", "XYZ-123456-ABC"} {
		t.Run(id, func(t *testing.T) {
			svc, f := newPaymentFixture(testSecret)
			body := `{"event":"charge.success","data":{"reference":"T1234567","metadata":{"order_id":"` + id + `"}}}`

			out, err := svc.HandleWebhook(context.Background(), []byte(body), sign(body))
			require.NoError(t, err)
			assert.Equal(t, WebhookIgnored, out.Action)
			assert.Empty(t, f.notifier.messages)
			assert.Empty(t, f.ledger.rows)
			require.Len(t, f.repo.events, 1)
			assert.Equal(t, "invalid order id", f.repo.events[0].Detail)
		})
	}
}

func TestHandleWebhook_InvalidJSONAcknowledged(t *testing.T) {
	svc, _ := newPaymentFixture(testSecret)
	body := `{not json`

	out, err := svc.HandleWebhook(context.Background(), []byte(body), sign(body))
	require.NoError(t, err)
	assert.Equal(t, WebhookIgnored, out.Action)
}

func TestVerifyTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testSecret, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/transaction/verify/T1234567":
			_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","reference":"T1234567","amount":450050,"currency":"NGN"}}`))
		case "/transaction/verify/T0000000":
			_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"abandoned","reference":"T0000000"}}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	svc := NewPaymentService(PaystackConfig{SecretKey: testSecret, BaseURL: srv.URL}, nil, nil, zap.NewNop())

	tx, err := svc.VerifyTransaction(context.Background(), "T1234567")
	require.NoError(t, err)
	assert.Equal(t, "4500.5", tx.Amount.String())
	assert.Equal(t, "NGN", tx.Currency)

	_, err = svc.VerifyTransaction(context.Background(), "T0000000")
	assert.ErrorIs(t, err, utils.ErrPaymentNotVerified)

	_, err = svc.VerifyTransaction(context.Background(), "T9999999")
	assert.ErrorIs(t, err, utils.ErrUpstream)

	_, err = svc.VerifyTransaction(context.Background(), "bad ref")
	assert.ErrorIs(t, err, utils.ErrInvalidRequest)
}
