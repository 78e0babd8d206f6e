// ABOUTME: Dependencies container provides dependency injection for the client
// ABOUTME: Defines the collaborators a client instance holds for its lifetime

package interfaces

// Dependencies holds all external dependencies required by the client
type Dependencies struct {
	// Transport dispatches built requests
	Transport Transport

	// Logger provides structured logging
	Logger Logger
}
