package ai

import "strings"

// GenerateMessageSuggestions returns three message templates for the given
// objective, audience type and tone. The first matching branch wins:
// win-back objectives, then launch objectives, then high-value audiences,
// else a generic set. Every template carries the {name} placeholder.
func GenerateMessageSuggestions(objective, audienceType, tone string) []string {
	objective = strings.ToLower(objective)
	audienceType = strings.ToLower(audienceType)
	_ = tone // reserved for future tone-specific variants

	switch {
	case strings.Contains(objective, "win-back") || strings.Contains(objective, "inactive"):
		return []string{
			"Hi {name}, we miss you! Here's 15% off your next order. 💝",
			"Hey {name}! Come back and discover what's new. Special offer inside! ✨",
			"We haven't seen you in a while, {name}. Here's something special just for you! 🎁",
		}
	case strings.Contains(objective, "new") || strings.Contains(objective, "launch"):
		return []string{
			"Hey {name}! Check out our latest collection! 🔥",
			"Exciting news, {name}! New arrivals are here. Be the first to shop! ⭐",
			"Hi {name}, something amazing just dropped! Don't miss out! 🚀",
		}
	case strings.Contains(audienceType, "high value") || strings.Contains(audienceType, "vip"):
		return []string{
			"Thank you for being a valued customer, {name}! Exclusive rewards await! ⭐",
			"Hi {name}, as a VIP member, you get early access to our sale! 👑",
			"Special appreciation for you, {name}! Here's your exclusive offer! 💎",
		}
	default:
		return []string{
			"Hi {name}, here's 10% off on your next order! 🎉",
			"Hey {name}! Don't miss out on our special deals! 💫",
			"Hello {name}, we have something special for you! ✨",
		}
	}
}
