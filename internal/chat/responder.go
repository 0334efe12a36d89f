// Package chat implements the NeuroAI assistant widget: canned guidance
// delivered with an artificial typing delay. There is no backend; replies
// come from a built-in playbook.
package chat

import "strings"

// Responder produces the assistant's reply to a user message. CannedResponder
// is the only implementation in this build; a real backend would slot in
// behind this interface.
type Responder interface {
	Respond(message string) string
}

// CannedResponder routes messages to fixed playbook answers by keyword.
type CannedResponder struct{}

// Greeting is the assistant's opening message.
func Greeting() string {
	return "Hi, I'm NeuroAI. I can walk you through scanning, findings, reporting, " +
		"staying inside your authorization, or taking a break. What are you working on?"
}

type playbookEntry struct {
	keywords []string
	reply    string
}

// Ordered most specific first; the first keyword hit wins.
var playbook = []playbookEntry{
	{
		keywords: []string{"legal", "authoriz", "permission", "scope", "allowed", "consent"},
		reply: "Quick summary: nothing happens before authorization is in writing.\n\n" +
			"• Confirm you hold explicit written authorization for every target\n" +
			"• Check the engagement scope: systems, time window, allowed activities\n" +
			"• If anything is unclear, stop and ask the engagement owner before acting\n\n" +
			"Confidence: very high. This is the one step that is never optional.",
	},
	{
		keywords: []string{"scan", "nmap", "recon", "enumerat", "discover", "port"},
		reply: "Quick summary: reconnaissance goes in small, verified steps.\n\n" +
			"1. Re-check the target is inside your authorized scope (2 min)\n" +
			"2. Start with passive discovery before touching the host (10-15 min)\n" +
			"3. Run one focused scan at a time and note what you expect to see\n" +
			"4. Record every result as you go, not at the end\n\n" +
			"Confidence: high. Slow, deliberate scanning gives cleaner data and fewer surprises.",
	},
	{
		keywords: []string{"vuln", "cve", "exploit", "finding", "severity"},
		reply: "Quick summary: verify before you rate, rate before you report.\n\n" +
			"• Reproduce the issue twice so you know it is real\n" +
			"• Rate severity by impact and exploitability (Critical/High/Medium/Low)\n" +
			"• Note the affected system, the evidence, and how to verify a fix\n" +
			"• Keep details confidential until they reach the right channel\n\n" +
			"Confidence: high. A verified medium is worth more than a guessed critical.",
	},
	{
		keywords: []string{"report", "document", "write", "summary"},
		reply: "Quick summary: structure first, prose second.\n\n" +
			"1. One-paragraph executive summary: what was tested, top risks\n" +
			"2. Findings ordered by severity, each with evidence and remediation steps\n" +
			"3. A verification section the client can re-run after fixing\n\n" +
			"Confidence: high. A clear structure carries the report; polish can wait.",
	},
	{
		keywords: []string{"break", "tired", "stress", "overwhelm", "anxious", "anxiety", "stuck"},
		reply: "It sounds like a pause might help, and that is a normal part of the work.\n\n" +
			"• Step away for five minutes; the terminal will keep your place\n" +
			"• Water, stretch, look at something far away\n" +
			"• When you come back, re-read your last note before typing anything\n\n" +
			"You are safe to stop at any point. Long sessions degrade judgment before " +
			"they degrade speed.",
	},
	{
		keywords: []string{"hello", "hi", "hey", "help", "start", "begin"},
		reply: "Welcome. Here is how I can help right now:\n\n" +
			"• \"scan\" - step-by-step reconnaissance guidance\n" +
			"• \"findings\" - verifying and rating what you found\n" +
			"• \"report\" - structuring the write-up\n" +
			"• \"legal\" - authorization and scope checks\n" +
			"• \"break\" - pacing and stress support\n\n" +
			"Short messages work best; one topic at a time.",
	},
}

const fallbackReply = "I did not catch a topic I know. In this build I answer from a " +
	"built-in playbook: try asking about scanning, findings, reporting, authorization, " +
	"or taking a break."

// Respond returns the playbook answer for the first matched keyword, or the
// fallback when nothing matches. Keywords match word prefixes, so "port"
// matches "ports" but not "report".
func (CannedResponder) Respond(message string) string {
	words := strings.Fields(strings.ToLower(message))
	for _, entry := range playbook {
		for _, keyword := range entry.keywords {
			for _, word := range words {
				if strings.HasPrefix(word, keyword) {
					return entry.reply
				}
			}
		}
	}
	return fallbackReply
}
