package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Config lever config
type Config struct {
	DB     db.Config `json:"db"`
	Redis  Redis     `json:"redis"`
	Oracle Oracle    `json:"oracle"`
	Admins []string  `json:"admins"`
}

// Redis redis config
type Redis struct {
	Addr string `json:"addr"`
	DB   int    `json:"db"`
}

// Oracle oracle config
type Oracle struct {
	// provider namespace resolved first; RootPriceProvider if empty
	DefaultProvider string `json:"default_provider"`
}

// IsAdmin check if the user is admin
func (c *Config) IsAdmin(userID string) bool {
	if len(c.Admins) <= 0 {
		return false
	}

	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}

	return false
}
