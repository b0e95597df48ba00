// Package assistant implements Packy, the scripted in-app product guide.
// Replies are a pure lookup keyed by the exact question text; anything the
// script does not know gets the fallback reply.
package assistant

// Greeting opens every conversation.
const Greeting = "Hi! I'm Packy 👋 Ask me about your products, recycling, or tap a suggestion below."

// DefaultFallback answers any question the script has no entry for.
const DefaultFallback = "Thanks for asking! I'm Packy, your product guide. I can help with product info, comparisons, expiry dates, and recycling tips. Try one of the quick suggestions! 📦"

// DefaultSuggestions are the quick-reply chips offered to a fresh
// conversation. Each one has a scripted answer.
func DefaultSuggestions() []string {
	return []string{
		"Explain this product simply",
		"Help me choose between products",
		"When does my milk expire?",
		"How do I recycle this pack?",
	}
}

// DefaultScript returns the canned replies.
func DefaultScript() map[string]string {
	return map[string]string{
		"Explain this product simply":     "This is a Tetra Pak carton of milk from a local Swedish farm. It's organic, fresh, and packaged in a recyclable carton. Best used within 7 days of opening! 🥛",
		"Help me choose between products": "Looking at your scanned products: the organic whole milk has the best sustainability score (87%), while the orange juice expires soonest. I'd recommend using the juice first! 🍊",
		"When does my milk expire?":       "Your Arla Organic Whole Milk expires on Feb 20, 2025. That's about a week away — still fresh! I'll remind you when it's getting close. ⏰",
		"How do I recycle this pack?":     "Great question! ♻️ Flatten the carton, keep the cap on, and place it in your paper/carton recycling bin. The carton is made of 70% renewable materials!",
	}
}
