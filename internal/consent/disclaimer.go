package consent

// Notice is the headline of the legal disclaimer.
const Notice = "FOR AUTHORIZED PENETRATION TESTING ONLY"

// Preamble introduces the terms shown by the consent gate.
const Preamble = "This application is designed exclusively for authorized security testing " +
	"and penetration testing activities. Users must:"

// Closing is the acknowledgement line shown under the terms.
const Closing = "By using this application, you acknowledge that you understand and agree " +
	"to these terms and accept full responsibility for your actions."

// Terms lists the obligations accepted at the gate.
func Terms() []string {
	return []string{
		"Obtain explicit written authorization before testing any systems",
		"Comply with all applicable laws and regulations",
		"Use this tool only for legitimate security assessment purposes",
		"Maintain confidentiality of all discovered vulnerabilities",
		"Report findings responsibly through proper channels",
	}
}

// Consequences lists what unauthorized use can lead to.
func Consequences() []string {
	return []string{
		"Criminal prosecution under computer fraud and abuse laws",
		"Civil liability for damages",
		"Professional sanctions and loss of credentials",
		"Permanent ban from using this application",
	}
}
