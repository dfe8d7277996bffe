package modules

import (
	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/modules/assets"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/modules/carousel"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/modules/home"
)

// Default returns the landing modules: page, assets and the live carousel.
func Default() []module.Module {
	return []module.Module{
		home.New(),
		assets.NewStatic(),
		assets.NewImages(),
		carousel.New(),
	}
}
