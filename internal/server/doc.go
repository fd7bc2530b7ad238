// Package server runs the application's transport servers.
//
// It binds the HTTP server and the optional gRPC health server and stops
// them gracefully. Start and Shutdown are driven by the application
// lifecycle.
package server
