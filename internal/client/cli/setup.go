package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/config"
	"github.com/dmitrijs2005/userdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
	"github.com/dmitrijs2005/userdesk/internal/filex"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// NewAppFromConfig builds the whole client from c: logger, local database,
// HTTP transport and both stores, reading and writing the terminal. The
// returned func closes the database.
func NewAppFromConfig(ctx context.Context, c *config.Config) (*App, func() error, error) {
	logger := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	base, err := url.Parse(c.APIBaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, nil, fmt.Errorf("invalid api base url %q", c.APIBaseURL)
	}

	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, nil, err
	}

	api := client.NewHTTPClient(&http.Client{}, *base, c.APIKey, logger)

	session, err := services.NewSessionStore(ctx, api, metadata.NewSessionSlot(db), logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	users := services.NewCollectionStore(api, logger)

	return NewApp(session, users, os.Stdin, os.Stdout, c.RequestTimeout, logger), db.Close, nil
}
