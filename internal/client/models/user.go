// Package models defines the client-side data model of the users collection.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ID identifies a user. The remote API sends it as a JSON number in list
// responses and as a string in create echoes, so both forms are accepted.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes numeric ids as numbers so that echoes match the
// server's own list format.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Origin tells where the current content of a record came from.
type Origin string

const (
	// OriginServer marks records materialized from a page fetch.
	OriginServer Origin = "server"
	// OriginLocal marks records created or rewritten locally. The server
	// accepted the write but did not store it, so a reload drops them.
	OriginLocal Origin = "local"
)

// UserFields is the editable part of a user.
type UserFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar"`
}

// User is one record of the collection.
type User struct {
	ID ID `json:"id"`
	UserFields
	Origin Origin `json:"-"`
}

// NewLocalUser merges an id with submitted fields.
func NewLocalUser(id ID, f UserFields) User {
	return User{ID: id, UserFields: f, Origin: OriginLocal}
}

// FullName returns "First Last".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Page is one page of the collection as reported by the server.
type Page struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

// Created is the server's answer to a create request. ID is empty when the
// server did not assign one.
type Created struct {
	ID        ID        `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
