package telephony

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Dialer places outbound calls through the Twilio REST API.
type Dialer struct {
	client *twilio.RestClient
	logger *slog.Logger
}

func NewDialer(accountSID, authToken string, logger *slog.Logger) (*Dialer, error) {
	if accountSID == "" || authToken == "" {
		return nil, fmt.Errorf("twilio account sid and auth token are required")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Dialer{client: client, logger: logger}, nil
}

// PlaceCall asks Twilio to call `to` from `from`, fetching call instructions
// from webhookURL once answered. It returns the call SID. The Twilio SDK does
// not take a context, so ctx is only checked before the request is sent.
func (d *Dialer) PlaceCall(ctx context.Context, to, from, webhookURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetUrl(webhookURL)

	call, err := d.client.Api.CreateCall(params)
	if err != nil {
		return "", fmt.Errorf("create call: %w", err)
	}

	sid := ""
	if call.Sid != nil {
		sid = *call.Sid
	}
	d.logger.Info("call placed", "sid", sid, "to", to)
	return sid, nil
}
