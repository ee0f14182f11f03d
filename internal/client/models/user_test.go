package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalNumberAndString(t *testing.T) {
	var got struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 7, "b": "812", "c": null}`), &got))

	assert.Equal(t, ID("7"), got.A)
	assert.Equal(t, ID("812"), got.B)
	assert.Equal(t, ID(""), got.C)
}

func TestID_UnmarshalRejectsObjects(t *testing.T) {
	var id ID
	require.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}

func TestID_MarshalKeepsNumbersNumeric(t *testing.T) {
	b, err := json.Marshal(map[string]ID{"n": "12", "s": "a-b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 12, "s": "a-b"}`, string(b))
}

func TestPage_DecodesServerPayload(t *testing.T) {
	payload := `{
		"page": 2, "per_page": 6, "total": 12, "total_pages": 2,
		"data": [
			{"id": 7, "email": "michael.lawson@reqres.in", "first_name": "Michael",
			 "last_name": "Lawson", "avatar": "https://reqres.in/img/faces/7-image.jpg"}
		],
		"support": {"url": "https://reqres.in/#support-heading"}
	}`

	var p Page
	require.NoError(t, json.Unmarshal([]byte(payload), &p))

	want := Page{
		Page: 2, PerPage: 6, Total: 12, TotalPages: 2,
		Data: []User{{
			ID: "7",
			UserFields: UserFields{
				FirstName: "Michael",
				LastName:  "Lawson",
				Email:     "michael.lawson@reqres.in",
				AvatarURL: "https://reqres.in/img/faces/7-image.jpg",
			},
		}},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLocalUser(t *testing.T) {
	u := NewLocalUser("42", UserFields{FirstName: "Eve", LastName: "Holt"})
	assert.Equal(t, ID("42"), u.ID)
	assert.Equal(t, OriginLocal, u.Origin)
	assert.Equal(t, "Eve Holt", u.FullName())
}
