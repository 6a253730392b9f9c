// Package ws implements the fraudwatch WebSocket hub.
//
// Hub manages a set of connected clients and broadcasts the latest completed
// scheduling run to all of them on a configurable interval.
//
// New(store, interval) creates a Hub.
// Hub.Run(ctx) starts the broadcast ticker — blocks until ctx is cancelled,
// then closes all active connections.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket, sends the latest
// run immediately on connect, then streams updates on each tick.
//
// Message format sent to clients:
//
//	{
//	  "event": "run",
//	  "data":  { /* same schema as GET /api/v1/runs/{id} */ }
//	}
//
// The upgrader accepts all origins. Apply CORS restrictions at the reverse
// proxy level. WebSocket endpoint is mounted at /ws/runs by the server.
package ws
