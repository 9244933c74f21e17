// controllers/contact_test.go
package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeSender struct {
	forwarded []string
	err       error
}

func (f *fakeSender) Forward(name, phone, message string) error {
	if f.err != nil {
		return f.err
	}
	f.forwarded = append(f.forwarded, name+": "+message)
	return nil
}

func setupContactRouter(sender *fakeSender) *gin.Engine {
	r := newTestRouter()
	r.POST("/api/contact", NewContactController(sender).Send)
	return r
}

func TestContactSend(t *testing.T) {
	sender := &fakeSender{}
	r := setupContactRouter(sender)

	recorder := doRequest(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "João",
		"phone":   "+5511999999999",
		"message": "Vocês atendem no sábado?",
	})
	expectStatus(t, recorder, http.StatusOK)

	if len(sender.forwarded) != 1 {
		t.Fatalf("forwarded = %d messages, want 1", len(sender.forwarded))
	}
}

func TestContactMissingMessage(t *testing.T) {
	sender := &fakeSender{}
	r := setupContactRouter(sender)

	recorder := doRequest(t, r, http.MethodPost, "/api/contact", gin.H{"name": "João"})
	expectStatus(t, recorder, http.StatusBadRequest)
	if len(sender.forwarded) != 0 {
		t.Fatal("message forwarded despite validation failure")
	}
}

func TestContactInvalidPhone(t *testing.T) {
	r := setupContactRouter(&fakeSender{})

	recorder := doRequest(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "João",
		"phone":   "abc",
		"message": "olá",
	})
	expectStatus(t, recorder, http.StatusBadRequest)
}

func TestContactSenderFailure(t *testing.T) {
	r := setupContactRouter(&fakeSender{err: errors.New("twilio down")})

	recorder := doRequest(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "João",
		"message": "olá",
	})
	expectStatus(t, recorder, http.StatusInternalServerError)
}
