package assist

import (
	"context"
	"fmt"
	"strings"
)

// cannedClient is the offline assistant used when assist is disabled or
// unreachable. Its replies are fixed templates over the prompt text, enough
// to keep the refinement step usable without a model.
type cannedClient struct{}

// NewCannedClient returns the offline responder.
func NewCannedClient() Client {
	return cannedClient{}
}

func (cannedClient) Exchange(_ context.Context, req ExchangeRequest) (*ExchangeResponse, error) {
	var text string
	switch req.Task {
	case TaskRefineSummary:
		text = "Consider stating the campaign goal, the audience, and the single " +
			"message the deliverables must carry. Keep the summary under three sentences."
	case TaskSuggestDeliverable:
		text = "Briefs like this often pair a short hero video with resized static " +
			"cutdowns per channel. Check whether a key visual is already covered."
	default:
		prompt := strings.TrimSpace(req.UserPrompt)
		if prompt == "" {
			text = "Tell me what the brief should achieve and I can suggest a structure."
		} else {
			text = fmt.Sprintf("Noted: %q. The assistant is offline, so treat this as a "+
				"placeholder reply; your text has been kept with the brief.", firstLine(prompt))
		}
	}
	return &ExchangeResponse{Text: text, Model: "canned"}, nil
}

func (cannedClient) Available(context.Context) bool { return true }

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// ClientFor picks the HTTP client when assist is enabled and the canned
// responder otherwise.
func ClientFor(cfg Config, observer Observer) Client {
	if cfg.Enabled {
		return NewClient(cfg, observer)
	}
	return NewCannedClient()
}
