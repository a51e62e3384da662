// Package service manages the long-lived collaborators around the game loop:
// persistence, audio output, the leaderboard backend and the debug server
package service

import "github.com/lixenwraith/hell-escape/config"

// Service defines the lifecycle of an infrastructure subsystem
//
// Lifecycle:
//  1. Construction
//  2. Init(cfg, hub) - configure from the merged config; dependencies are already initialized
//  3. Start() - open devices, launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service; siblings named in Dependencies are reachable through hub
	Init(cfg *config.Config, hub *Hub) error

	// Start begins service operation, called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}
