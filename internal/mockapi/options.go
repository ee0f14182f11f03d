package mockapi

import (
	"time"

	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// Options configures the mock API.
type Options struct {
	// APIKey, when set, must be sent in the x-api-key header.
	APIKey   string
	Secret   string
	TokenTTL time.Duration
	PerPage  int
	Logger   logging.Logger
}

func (o *Options) setDefaults() {
	if o.Secret == "" {
		o.Secret = "mockapi-secret"
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = time.Hour
	}
	if o.PerPage <= 0 {
		o.PerPage = 6
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
}
