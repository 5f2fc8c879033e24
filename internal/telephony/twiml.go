package telephony

import (
	"fmt"

	"github.com/twilio/twilio-go/twiml"
)

const (
	GreetingPrompt = "Hi, this is your AI assistant. How was your day today? " +
		"Tell me about your energy, what went well, one thing you learned, " +
		"and three things you are grateful for."
	ClosingLine = "Thank you. Your reflection has been saved. Good night!"
)

// GatherMarkup asks Twilio to capture speech after the greeting and POST the
// transcript to actionURL.
func GatherMarkup(actionURL string) (string, error) {
	gather := &twiml.VoiceGather{
		Input:  "speech",
		Action: actionURL,
		Method: "POST",
		InnerElements: []twiml.Element{
			&twiml.VoiceSay{Message: GreetingPrompt},
		},
	}
	out, err := twiml.Voice([]twiml.Element{gather})
	if err != nil {
		return "", fmt.Errorf("render gather twiml: %w", err)
	}
	return out, nil
}

// ClosingMarkup speaks the acknowledgment that ends the call.
func ClosingMarkup() (string, error) {
	out, err := twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: ClosingLine},
	})
	if err != nil {
		return "", fmt.Errorf("render closing twiml: %w", err)
	}
	return out, nil
}
