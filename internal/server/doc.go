// Package server runs the public site: the HTTP listener and the background
// workers share one lifecycle with signal handling and graceful shutdown.
package server
