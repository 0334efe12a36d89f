package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCannedResponderRouting(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantFrom string
	}{
		{
			name:     "scanning guidance",
			message:  "how do I start scanning the target?",
			wantFrom: "reconnaissance goes in small, verified steps",
		},
		{
			name:     "port routes to scanning",
			message:  "which ports first?",
			wantFrom: "reconnaissance goes in small",
		},
		{
			name:     "report does not route to scanning",
			message:  "help me with the report",
			wantFrom: "structure first, prose second",
		},
		{
			name:     "authorization reminder",
			message:  "is this in scope?",
			wantFrom: "authorization is in writing",
		},
		{
			name:     "vulnerability guidance",
			message:  "found a vulnerability, now what",
			wantFrom: "verify before you rate",
		},
		{
			name:     "wellbeing support",
			message:  "I feel overwhelmed",
			wantFrom: "a pause might help",
		},
		{
			name:     "greeting",
			message:  "hi",
			wantFrom: "Here is how I can help",
		},
		{
			name:     "case insensitive",
			message:  "NMAP flags?",
			wantFrom: "reconnaissance goes in small",
		},
		{
			name:     "unknown topic falls back",
			message:  "what is the weather like",
			wantFrom: "built-in playbook",
		},
	}

	r := CannedResponder{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, r.Respond(tt.message), tt.wantFrom)
		})
	}
}

func TestGreetingMentionsTopics(t *testing.T) {
	g := Greeting()
	assert.Contains(t, g, "NeuroAI")
	assert.Contains(t, g, "break")
}
