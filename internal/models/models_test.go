package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestUserPatch_Apply_MergesAndStamps(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	u := User{ID: "1", FullName: "Alice", Email: "a@x.com", Password: "secret1", CreatedAt: created}

	UserPatch{FullName: strptr("Alice Smith"), Email: strptr("alice@x.com"), Password: strptr("")}.Apply(&u, now)

	assert.Equal(t, "Alice Smith", u.FullName)
	assert.Equal(t, "alice@x.com", u.Email)
	assert.Equal(t, "secret1", u.Password, "empty password must not overwrite")
	require.NotNil(t, u.UpdatedAt)
	assert.Equal(t, now, *u.UpdatedAt)

	UserPatch{Password: strptr("newpass")}.Apply(&u, now)
	assert.Equal(t, "newpass", u.Password)
	assert.Equal(t, "Alice Smith", u.FullName)
}

func TestUser_JSONUsesCamelCase(t *testing.T) {
	u := User{ID: "1", FullName: "Google User", Email: "g@gmail.com", Password: "p",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), AuthProvider: ProviderGoogle}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","fullName":"Google User","email":"g@gmail.com","password":"p",
		"createdAt":"2025-01-01T00:00:00Z","authProvider":"google"}`, string(b))
}

func TestUser_DecodesWebClientRecord(t *testing.T) {
	raw := `{"id":"1700000000000","fullName":"Alice","email":"a@x.com","password":"secret1",
		"createdAt":"2024-11-14T22:13:20.000Z","updatedAt":"2024-11-15T10:00:00.000Z"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	assert.Equal(t, "1700000000000", u.ID)
	require.NotNil(t, u.UpdatedAt)
	assert.Empty(t, u.AuthProvider)
}

func TestNewSession_CopiesIdentity(t *testing.T) {
	now := time.Now().UTC()
	s := NewSession(User{ID: "u1", FullName: "Alice", Email: "a@x.com", Password: "x"}, now)
	assert.Equal(t, Session{ID: "u1", FullName: "Alice", Email: "a@x.com", LoginTime: now}, s)
}

func TestContactDraft_HasContent(t *testing.T) {
	assert.False(t, ContactDraft{}.HasContent())
	assert.False(t, ContactDraft{Subject: "general"}.HasContent())
	assert.True(t, ContactDraft{Name: "A"}.HasContent())
	assert.True(t, ContactDraft{Email: "a"}.HasContent())
	assert.True(t, ContactDraft{Message: "m"}.HasContent())
}

func TestContactDraft_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 24 * time.Hour

	assert.False(t, ContactDraft{Timestamp: now.Add(-time.Hour)}.Expired(now, ttl))
	assert.False(t, ContactDraft{Timestamp: now.Add(-ttl)}.Expired(now, ttl))
	assert.True(t, ContactDraft{Timestamp: now.Add(-25 * time.Hour)}.Expired(now, ttl))
}

func TestUnwrap_Course(t *testing.T) {
	env := Envelope{ID: "c1", Kind: ContentKindCourse, Title: "Go Basics", Description: "twenty characters or more", Category: "Backend",
		Details: json.RawMessage(`{"price":15000,"level":"Beginner","icon":"📚"}`)}

	got, err := env.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, ContentItem{ID: "c1", Title: "Go Basics", Description: "twenty characters or more", Category: "Backend",
		Payload: Course{Price: 15000, Level: "Beginner", Icon: "📚"}}, got)
	assert.Equal(t, ContentKindCourse, got.Kind())
}

func TestUnwrap_EbookAndVideo(t *testing.T) {
	tests := []struct {
		env  Envelope
		want TypedContent
	}{
		{Envelope{ID: "e1", Kind: ContentKindEbook, Details: json.RawMessage(`{"url":"https://x/book.pdf","icon":"📘"}`)},
			Ebook{URL: "https://x/book.pdf", Icon: "📘"}},
		{Envelope{ID: "v1", Kind: ContentKindVideo, Details: json.RawMessage(`{"url":"https://youtu.be/x","duration":12}`)},
			Video{URL: "https://youtu.be/x", Duration: 12}},
	}
	for _, tc := range tests {
		got, err := tc.env.Unwrap()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Payload)
		assert.Equal(t, tc.env.ID, got.ID)
	}
}

func TestUnwrap_UnknownKindAndBadDetails(t *testing.T) {
	_, err := Envelope{Kind: "podcast", Details: json.RawMessage(`{}`)}.Unwrap()
	require.ErrorIs(t, err, ErrUnknownContentKind)

	_, err = Envelope{Kind: ContentKindVideo, Details: json.RawMessage(`{"duration":"long"}`)}.Unwrap()
	require.ErrorContains(t, err, "decode video details")
}

func TestParseContentKind(t *testing.T) {
	cases := map[string]ContentKind{
		"course": ContentKindCourse, "courses": ContentKindCourse,
		"ebook": ContentKindEbook, "e-books": ContentKindEbook,
		"videos": ContentKindVideo,
	}
	for in, want := range cases {
		got, err := ParseContentKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseContentKind("podcasts")
	require.ErrorIs(t, err, ErrUnknownContentKind)
}
