// Package client contains the transport side of the userdesk client.
//
// # Overview
//
//  1. Client is the transport contract the stores depend on: Login,
//     ListUsers, CreateUser, UpdateUser and DeleteUser.
//  2. HTTPClient implements it against a reqres-style REST API. Every
//     request carries the configured x-api-key header when one is set.
//  3. InitDatabase and RunMigrations open the local SQLite database that
//     backs the durable persistence slot and apply the embedded goose
//     migrations.
//
// # Error Handling
//
// Every failure is returned as one of three typed errors carrying a display
// message: *AuthError for login, *FetchError for page loads and *WriteError
// for create/update/delete. The underlying cause is wrapped and can be
// classified with errors.Is against ErrUnavailable and ErrUnauthorized.
// Nothing here retries.
package client
