// services/contact_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ContactNotifier forwards messages left on the site's contact section
// to the shop's phone via Twilio (WhatsApp when the number allows it).
type ContactNotifier struct {
	client *twilio.RestClient
	to     string
}

func NewContactNotifier() *ContactNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ContactNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		to: os.Getenv("CONTACT_PHONE"),
	}
}

func (n *ContactNotifier) Forward(name, phone, message string) error {
	if n.to == "" {
		return fmt.Errorf("CONTACT_PHONE not set")
	}

	body := fmt.Sprintf("Contato do site - %s", name)
	if phone != "" {
		body += fmt.Sprintf(" (%s)", phone)
	}
	body += ": " + message

	// WhatsApp when the shop number is in E.164 format, SMS otherwise
	to := n.to
	channel := "sms"
	if strings.HasPrefix(n.to, "+") {
		to = "whatsapp:" + n.to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(body)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("Contact message forwarded, SID: %s", *resp.Sid)
	}
	return nil
}
