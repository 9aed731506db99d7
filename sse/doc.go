// Package sse provides Server-Sent Events (SSE) infrastructure for
// delivering paced stream values to browser clients.
//
// It includes client connection management, pattern-based event
// broadcasting to multiple subscribers, and a sink that drains a
// suspendable sequence into the hub.
//
// # Architecture
//
//   - Hub: Central event router managing client subscriptions
//   - Broadcaster: Sends events to all matching clients
//   - Handler: gin handler for the SSE endpoint
//   - Stream/StreamJSON: drain a sequence into the hub
//
// # Usage
//
//	hub := sse.NewHub()
//	go hub.Run()
//	router.GET("/streams/:stream/events", sse.Handler(hub))
//
//	go sse.StreamJSON(ctx, hub, "ticker:*", p.Sequence())
package sse
