package solver

import (
	"go.uber.org/zap"
)

// search carries the settings shared by the pair and divider searches.
type search struct {
	cfg *Config
	log *zap.Logger
}

func defaultSearch() search {
	return search{cfg: DefaultConfig(), log: zap.NewNop()}
}
