// Package chat implements the keyword based help assistant.
package chat

import "strings"

// Fallback is the reply for messages no rule matches
const Fallback = "I'm not sure, but I'm learning! 😊"

// rule maps a keyword to a canned reply
type rule struct {
	keyword string
	reply   string
}

// rules are checked in order, the first match wins
func rules() []rule {
	return []rule{
		{keyword: "upload", reply: "To upload a report, click the + button!"},
		{keyword: "profile", reply: "Your profile is available at the top right corner."},
		{keyword: "delete", reply: "Deleted reports go to the Trash section."},
	}
}

// Reply returns the assistant answer to message.
// Matching is case sensitive substring search. An empty message
// (after trimming) gets no reply and ok is false.
func Reply(message string) (reply string, ok bool) {
	text := strings.TrimSpace(message)
	if text == "" {
		return "", false
	}

	for _, r := range rules() {
		if strings.Contains(text, r.keyword) {
			return r.reply, true
		}
	}
	return Fallback, true
}
