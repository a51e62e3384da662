package service

import (
	"log"

	"github.com/lixenwraith/hell-escape/config"
	"github.com/lixenwraith/hell-escape/leaderboard"
)

// LeaderboardService selects the score backend
type LeaderboardService struct {
	client leaderboard.Client
}

// NewLeaderboardService creates the leaderboard service
func NewLeaderboardService() *LeaderboardService {
	return &LeaderboardService{}
}

func (s *LeaderboardService) Name() string           { return NameLeaderboard }
func (s *LeaderboardService) Dependencies() []string { return nil }

func (s *LeaderboardService) Init(cfg *config.Config, _ *Hub) error {
	lb := cfg.Leaderboard
	if lb.URL == "" {
		s.client = leaderboard.Disabled{}
		log.Printf("[service] leaderboard disabled")
		return nil
	}
	s.client = leaderboard.NewFirebaseClient(lb.URL, lb.Namespace, lb.Timeout())
	log.Printf("[service] leaderboard at %s (ns=%s)", lb.URL, lb.Namespace)
	return nil
}

func (s *LeaderboardService) Start() error { return nil }
func (s *LeaderboardService) Stop() error  { return nil }

// Client returns the backend, Disabled before Init
func (s *LeaderboardService) Client() leaderboard.Client {
	if s.client == nil {
		return leaderboard.Disabled{}
	}
	return s.client
}
