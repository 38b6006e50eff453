package invaders

import "github.com/vovakirdan/tui-invaders/internal/registry"

func init() {
	registry.Register(registry.GameInfo{ID: "invaders", Title: "Space Invaders"}, func(deps registry.Deps) registry.Game {
		// A typed nil adapter must not reach the interface
		if deps.Scores == nil {
			return New(deps.Config, nil)
		}
		return New(deps.Config, deps.Scores)
	})
}

var _ registry.Game = (*Game)(nil)
