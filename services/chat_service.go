package services

import (
	"strings"
)

// ChatReply is what the bot sends back. Action "navigate" tells the client to
// open the cafe (or slot page) named by CafeID.
type ChatReply struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	CafeID  string `json:"cafeId,omitempty"`
}

type ChatService struct{}

func NewChatService() *ChatService { return &ChatService{} }

// Reply is a keyword dispatcher; first match wins. Input is lowercased and
// hyphen/underscore-normalized so "golden-bakery" and "golden bakery" match
// the same rule.
func (s *ChatService) Reply(message string) ChatReply {
	msg := strings.ToLower(message)
	msg = strings.NewReplacer("-", " ", "_", " ").Replace(msg)

	switch {
	case strings.Contains(msg, "slot"):
		return ChatReply{
			Message: "I'll take you to the slot booking page right away!",
			Action:  "navigate", CafeID: "ttmm-slot",
		}
	case strings.Contains(msg, "hangout") || strings.Contains(msg, "hagout"):
		return ChatReply{
			Message: "I'll show you Hangout Cafe's menu!",
			Action:  "navigate", CafeID: "hangout-cafe",
		}
	case strings.Contains(msg, "cafe house") || strings.Contains(msg, "cafehouse"):
		return ChatReply{
			Message: "Let me show you Cafe House's menu!",
			Action:  "navigate", CafeID: "cafe-house",
		}
	case strings.Contains(msg, "ttmm"):
		return ChatReply{
			Message: "I'll take you to TTMM's menu right away!",
			Action:  "navigate", CafeID: "ttmm",
		}
	case strings.Contains(msg, "golden bakery"):
		return ChatReply{
			Message: "Let me show you Golden Bakery's menu!",
			Action:  "navigate", CafeID: "golden-bakery",
		}
	case strings.Contains(msg, "menu"):
		return ChatReply{
			Message: "I can help you with our cafe menus. We have Hangout Cafe, TTMM, and Cafe House. Which one would you like to know about?",
		}
	case strings.Contains(msg, "book"), strings.Contains(msg, "reservation"), strings.Contains(msg, "table"):
		return ChatReply{
			Message: "I can help you book a table. Which cafe would you like to make a reservation at?",
		}
	case strings.Contains(msg, "location"):
		return ChatReply{
			Message: "All our cafes are located in Parbhani. Would you like specific directions to any of them?",
		}
	default:
		return ChatReply{
			Message: "I can help you with menu information, reservations, and locations for our cafes. What would you like to know?",
		}
	}
}
