package system

import "github.com/lixenwraith/hell-escape/engine"

// Install registers every gameplay system on g
// Event handling systems are routed by Game.AddSystem
func Install(g *engine.Game) {
	ctx := g.Context()
	g.AddSystem(NewPlayerSystem(ctx))
	g.AddSystem(NewObstacleSystem(ctx))
	g.AddSystem(NewCollisionSystem(ctx))
	g.AddSystem(NewCameraSystem(ctx))
	g.AddSystem(NewStageSystem(ctx))
	g.AddSystem(NewAudioSystem(ctx))
	g.AddSystem(NewMetricsSystem(ctx))
}
