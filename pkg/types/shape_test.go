package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordJSON = `{
	"id": "w1",
	"word": "record",
	"pronunciation": [{"type": "us", "phonetic": "/ˈrekərd/"}],
	"definitions": [{"partOfSpeech": "noun", "meaning": "a stored account", "level": "intermediate"}],
	"examples": [],
	"synonyms": [],
	"antonyms": [],
	"frequency": 1200,
	"tags": ["cet4"],
	"createdAt": "2024-01-01T00:00:00Z",
	"updatedAt": "2024-01-02T00:00:00Z"
}`

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	out := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		out[i] = e.Field
	}
	return out
}

func TestCheckShape_ValidWord(t *testing.T) {
	t.Parallel()

	var w Word
	require.NoError(t, CheckShape([]byte(wordJSON), &w))
	assert.Equal(t, "record", w.Word)
	assert.Nil(t, w.Etymology)
}

func TestCheckShape_OptionalFieldsMayBeAbsent(t *testing.T) {
	t.Parallel()

	var req LoginRequest
	require.NoError(t, CheckShape([]byte(`{"username":"ann","password":"secret"}`), &req))
	assert.Nil(t, req.RememberMe)
	assert.Nil(t, req.Captcha)

	req = LoginRequest{}
	require.NoError(t, CheckShape([]byte(`{"username":"ann","password":"secret","rememberMe":null}`), &req))
}

func TestCheckShape_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		target     func() any
		wantFields []string
	}{
		{
			name:       "missing required field",
			data:       `{"username":"ann"}`,
			target:     func() any { return &LoginRequest{} },
			wantFields: []string{"password"},
		},
		{
			name:       "missing nested field",
			data:       `{"query":"run","type":"fuzzy","pagination":{"page":1}}`,
			target:     func() any { return &SearchRequest{} },
			wantFields: []string{"pagination.pageSize"},
		},
		{
			name: "missing field inside array element",
			data: `{"id":"w1","word":"x","pronunciation":[],"definitions":[{"meaning":"m","level":"beginner"}],
				"examples":[],"synonyms":[],"antonyms":[],"frequency":0,"tags":[],
				"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}`,
			target:     func() any { return &Word{} },
			wantFields: []string{"definitions[0].partOfSpeech"},
		},
		{
			name: "enum outside value set inside array element",
			data: `{"id":"w1","word":"x","pronunciation":[],"definitions":[
				{"partOfSpeech":"verb","meaning":"m","level":"beginner"},
				{"partOfSpeech":"VERB","meaning":"m","level":"beginner"}],
				"examples":[],"synonyms":[],"antonyms":[],"frequency":0,"tags":[],
				"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}`,
			target:     func() any { return &Word{} },
			wantFields: []string{"definitions[1].partOfSpeech"},
		},
		{
			name: "enum outside value set in nested record",
			data: `{"user":{"id":"u1","username":"ann","email":"ann@example.com","nickname":"Ann",
				"role":"root","status":"active","createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"},
				"token":"t","refreshToken":"r","expiresAt":1}`,
			target:     func() any { return &LoginResponse{} },
			wantFields: []string{"user.role"},
		},
		{
			name:       "malformed timestamp",
			data:       `{"userId":"u1","totalWords":0,"todayTarget":0,"reviewWords":[],"newWords":[],"scheduledAt":"yesterday"}`,
			target:     func() any { return &ReviewPlan{} },
			wantFields: []string{"scheduledAt"},
		},
		{
			name:       "null for non-nullable field",
			data:       `{"username":null,"password":"secret"}`,
			target:     func() any { return &LoginRequest{} },
			wantFields: []string{"username"},
		},
		{
			name:       "unknown field",
			data:       `{"username":"ann","password":"secret","isAdmin":true}`,
			target:     func() any { return &LoginRequest{} },
			wantFields: []string{"body"},
		},
		{
			name:       "trailing data",
			data:       `{"username":"ann","password":"secret"} {}`,
			target:     func() any { return &LoginRequest{} },
			wantFields: []string{"body"},
		},
		{
			name:       "wrong type",
			data:       `{"username":42,"password":"secret"}`,
			target:     func() any { return &LoginRequest{} },
			wantFields: []string{"body"},
		},
		{
			name:       "known enum literal",
			data:       `{"type":"uk","phonetic":"/x/"}`,
			target:     func() any { return &Pronunciation{} },
			wantFields: nil,
		},
		{
			name:       "invariant checked after shape",
			data:       `{"username":"","password":"secret"}`,
			target:     func() any { return &LoginRequest{} },
			wantFields: []string{"username"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckShape([]byte(tt.data), tt.target())
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestCheckShape_EnumOutsideValueSet(t *testing.T) {
	t.Parallel()

	var p Pronunciation
	err := CheckShape([]byte(`{"type":"nz","phonetic":"/x/"}`), &p)
	require.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []FieldError{{Field: "type", Message: `unknown value "nz"`}}, ve.Errors)
}

func TestCheckShape_ReportsEveryPathAtOnce(t *testing.T) {
	t.Parallel()

	err := CheckShape([]byte(`{"type":"nz"}`), &Pronunciation{})
	assert.ElementsMatch(t, []string{"type", "phonetic"}, fieldsOf(t, err))
}

func TestCheckShape_NeedsPointer(t *testing.T) {
	t.Parallel()

	err := CheckShape([]byte(`{}`), LoginRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)

	var nilReq *LoginRequest
	require.Error(t, CheckShape([]byte(`{}`), nilReq))
}

func TestCheckShape_Envelope(t *testing.T) {
	t.Parallel()

	data := `{"code":0,"message":"ok","data":{"username":"ann","password":"pw"},"success":true,"timestamp":1700000000000}`

	var resp BaseResponse[LoginRequest]
	require.NoError(t, CheckShape([]byte(data), &resp))
	assert.Equal(t, "ann", resp.Data.Username)

	var missing BaseResponse[LoginRequest]
	err := CheckShape([]byte(`{"code":0,"message":"ok","data":{"username":"ann"},"success":true,"timestamp":1}`), &missing)
	assert.Equal(t, []string{"data.password"}, fieldsOf(t, err))
}
