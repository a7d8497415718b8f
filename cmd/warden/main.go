// Warden is a content moderation service.
//
// It assigns a moderation verdict to user-submitted content (text or URL)
// before publication, providing:
//   - Pattern-based detection across eleven violation categories
//   - Always-on personal-information detection (SSN, phone, email, card)
//   - Confidence scoring with text-length and repeat-offender adjustments
//   - Severity classification with confidence-based escalation
//   - An asynchronous audit trail with scheduled retention pruning
//
// Usage:
//
//	# Start server with default configuration
//	warden run
//
//	# Start with custom configuration file
//	warden run --config /path/to/config.yaml
//
//	# Analyze a piece of text from the terminal
//	warden check --text "free money, click here"
//
//	# Validate a configuration file
//	warden validate --config /path/to/config.yaml
//
//	# Show version information
//	warden version
package main

func main() {
	Execute()
}
