package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/sos"
)

func testTwilioConfig(baseURL string) *models.Config {
	return &models.Config{
		Twilio: models.TwilioConfig{
			AccountSID:     "AC123",
			AuthToken:      "secret",
			SMSNumber:      "+15550001111",
			WhatsAppNumber: "+15550002222",
			BaseURL:        baseURL,
			TimeoutSec:     5,
		},
	}
}

func TestSendSMS_Success(t *testing.T) {
	// Arrange
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		gotForm = map[string]string{
			"From": r.PostFormValue("From"),
			"To":   r.PostFormValue("To"),
			"Body": r.PostFormValue("Body"),
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM123"}`))
	}))
	defer server.Close()

	gw := NewSOSGW(testTwilioConfig(server.URL), nil)

	// Act
	err := gw.SendSMS(context.Background(), "+628111222333", "help")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "+15550001111", gotForm["From"])
	assert.Equal(t, "+628111222333", gotForm["To"])
	assert.Equal(t, "help", gotForm["Body"])
}

func TestSendWhatsApp_PrefixesNumbers(t *testing.T) {
	// Arrange
	var gotFrom, gotTo string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotFrom = r.PostFormValue("From")
		gotTo = r.PostFormValue("To")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM124"}`))
	}))
	defer server.Close()

	gw := NewSOSGW(testTwilioConfig(server.URL), nil)

	// Act
	err := gw.SendWhatsApp(context.Background(), "+628111222333", "help")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "whatsapp:+15550002222", gotFrom)
	assert.Equal(t, "whatsapp:+628111222333", gotTo)
}

func TestSendSMS_ProviderRejection(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": 20003}`))
	}))
	defer server.Close()

	gw := NewSOSGW(testTwilioConfig(server.URL), nil)

	// Act
	err := gw.SendSMS(context.Background(), "+628111222333", "help")

	// Assert
	assert.ErrorIs(t, err, sos.ErrNotificationProvider)
}
