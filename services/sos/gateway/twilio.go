package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sakhipath/sakhipath/services/sos"
)

// SendSMS delivers a text message through the Twilio Messages API
func (g *SOSGW) SendSMS(ctx context.Context, to, message string) error {
	return g.sendMessage(ctx, g.cfg.Twilio.SMSNumber, to, message)
}

// SendWhatsApp delivers a WhatsApp message through the Twilio Messages API
func (g *SOSGW) SendWhatsApp(ctx context.Context, to, message string) error {
	return g.sendMessage(ctx, "whatsapp:"+g.cfg.Twilio.WhatsAppNumber, "whatsapp:"+to, message)
}

func (g *SOSGW) sendMessage(ctx context.Context, from, to, message string) error {
	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", message)

	path := fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", g.cfg.Twilio.AccountSID)

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		_, err := g.twilioClient.PostForm(ctx, path, form, g.cfg.Twilio.AccountSID, g.cfg.Twilio.AuthToken)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", sos.ErrNotificationProvider, err)
	}

	return nil
}
