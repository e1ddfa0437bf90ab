// Package server provides the HTTP server implementation for the agent session API.
//
// The server exposes the session engine over HTTP: conversation lifecycle,
// streaming chat turns, file operations, configuration, and a Server-Sent
// Events feed of bus activity.
//
// # Core Components
//
//   - HTTP Server: Chi-based router with middleware for CORS, request IDs,
//     logging, and panic recovery
//   - Session Management: conversation lifecycle, forking, sharing, diffs
//   - Event Streaming: Server-Sent Events (SSE) for real-time updates
//   - File Operations: file reads, git status, text/file/symbol search
//   - Provider Integration: multiple AI providers via the provider registry
//   - Tool Registry: the agent's built-in tool set
//   - Permission Gate: interactive allow/deny/ask for sensitive tool calls
//
// # API Endpoints
//
//   - /session/*: session lifecycle management and messaging
//   - /file/*, /find/*: file system operations and search helpers
//   - /config/*, /provider/*, /agent: configuration and catalog endpoints
//   - /event: real-time event streaming via SSE
//   - /project/*: project root discovery
//
// # Session Management
//
// Sessions are the core abstraction for AI conversations. Each session:
//   - Maintains conversation history with an AI provider
//   - Has an associated working directory for file operations
//   - Can be forked to create branching conversations
//   - Supports real-time streaming of AI responses
//   - Integrates with tools for code analysis and modification
//
// # Event System
//
// session.updated, message.part.updated, permission.* and related events are
// published to an in-process bus and relayed to SSE subscribers; GET /event
// and GET /global/event both stream every event.
//
// # Usage Example
//
//	config := server.DefaultConfig()
//	config.Port = 8080
//	config.Directory = "/path/to/project"
//
//	srv := server.New(config, appConfig, storage, providerRegistry, toolRegistry)
//
//	if err := srv.Start(); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture Notes
//
// The server uses a layered architecture: HTTP handlers for request/response
// processing, a service layer for business logic (session, storage), a
// provider abstraction for AI model integration, an event bus for decoupled
// component communication, and a storage layer for persistence.
package server
