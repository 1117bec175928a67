package catalog

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/unidict-shared/pkg/types"
)

const apiPrefix = "/api/v1"

func status(code int) string { return strconv.Itoa(code) }

func pathParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "string", Required: true, Description: description, Example: exampleIDFor(name)}
}

func exampleIDFor(name string) string {
	switch name {
	case "wordId":
		return exampleWordID
	case "vocabularyId":
		return exampleVocabID
	}
	return exampleUserID
}

func paginationParams() []types.Parameter {
	return []types.Parameter{
		{Name: "page", Type: "integer", Description: "1-based page number", Example: 1},
		{Name: "pageSize", Type: "integer", Description: fmt.Sprintf("items per page, at most %d", types.MaxPageSize), Example: types.DefaultPageSize},
		{Name: "sort", Type: "string", Description: "field to sort by", Example: "createdAt"},
		{Name: "order", Type: "string", Description: "asc or desc", Example: string(types.SortOrderDesc)},
	}
}

var (
	errUnauthorized = apiError(types.ErrCodeUnauthorized, "authentication required")
	errForbidden    = apiError(types.ErrCodeForbidden, "forbidden")
	errInternal     = apiError(types.ErrCodeInternal, "internal server error")
)

func errNotFound(what string) *types.APIError {
	return apiError(types.ErrCodeNotFound, what+" not found")
}

// Default returns a Registry describing every endpoint of the platform,
// with example bodies built from the registry's types.
func Default() (*Registry, error) {
	r := New()
	groups := [][]types.APIEndpoint{
		authEndpoints(),
		userEndpoints(),
		wordEndpoints(),
		searchEndpoints(),
		vocabularyEndpoints(),
		studyEndpoints(),
		aiEndpoints(),
		speechEndpoints(),
		ocrEndpoints(),
		systemEndpoints(),
	}
	for _, g := range groups {
		for _, e := range g {
			if err := r.Add(e); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func authEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/auth/login",
			Description: "Sign in with username and password.",
			RequestBody: types.LoginRequest{Username: "lena_k", Password: "Correct-horse-battery9", RememberMe: ptr(true)},
			Responses: map[string]any{
				status(http.StatusOK):           envelope(exampleLogin()),
				status(http.StatusBadRequest):   validationError(types.FieldError{Field: "password", Message: "required"}),
				status(http.StatusUnauthorized): apiError(types.ErrCodeUnauthorized, "invalid username or password"),
			},
		},
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/auth/register",
			Description: "Create an account and sign in.",
			RequestBody: types.RegisterRequest{
				Username:        "lena_k",
				Email:           "lena@example.com",
				Password:        "Correct-horse-battery9",
				ConfirmPassword: "Correct-horse-battery9",
				Nickname:        "Lena",
				InviteCode:      ptr("SPRING24"),
			},
			Responses: map[string]any{
				status(http.StatusCreated):    envelope(exampleLogin()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "confirmPassword", Message: "does not match password"}),
				status(http.StatusConflict):   apiError(types.ErrCodeAlreadyExists, "username already taken"),
			},
		},
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/auth/logout",
			Description: "Revoke the current session.",
			Responses: map[string]any{
				status(http.StatusOK):           envelope(true),
				status(http.StatusUnauthorized): errUnauthorized,
			},
		},
	}
}

func userEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/users/me",
			Description: "Get the signed-in user.",
			Responses: map[string]any{
				status(http.StatusOK):           envelope(exampleUser()),
				status(http.StatusUnauthorized): errUnauthorized,
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/users/{id}/profile",
			Description: "Get a user's profile.",
			Parameters:  []types.Parameter{pathParam("id", "user id")},
			Responses: map[string]any{
				status(http.StatusOK):       envelope(exampleProfile()),
				status(http.StatusNotFound): errNotFound("user"),
			},
		},
		{
			Method:      types.MethodPut,
			Path:        apiPrefix + "/users/{id}/profile",
			Description: "Replace a user's profile. Only the owner or an admin may do this.",
			Parameters:  []types.Parameter{pathParam("id", "user id")},
			RequestBody: exampleProfile(),
			Responses: map[string]any{
				status(http.StatusOK):         envelope(exampleProfile()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "timezone", Message: "unknown time zone"}),
				status(http.StatusForbidden):  errForbidden,
			},
		},
		{
			Method:      types.MethodPut,
			Path:        apiPrefix + "/users/me/preferences",
			Description: "Replace the signed-in user's preferences.",
			RequestBody: types.DefaultUserPreferences("de"),
			Responses: map[string]any{
				status(http.StatusOK):         envelope(types.DefaultUserPreferences("de")),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "learning.dailyGoal", Message: "must be at least 1"}),
			},
		},
	}
}

func wordEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/words",
			Description: "List dictionary words.",
			Parameters:  paginationParams(),
			Responses: map[string]any{
				status(http.StatusOK): envelope(types.NewPaginationResponse([]types.Word{exampleWord()}, 1, 1, types.DefaultPageSize)),
			},
		},
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/words",
			Description: "Add a word to the dictionary. Admin only.",
			RequestBody: exampleWord(),
			Responses: map[string]any{
				status(http.StatusCreated):    envelope(exampleWord()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "definitions[0].partOfSpeech", Message: "invalid value"}),
				status(http.StatusForbidden):  errForbidden,
				status(http.StatusConflict):   apiError(types.ErrCodeAlreadyExists, "word already exists"),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/words/{wordId}",
			Description: "Get a word by id.",
			Parameters:  []types.Parameter{pathParam("wordId", "word id")},
			Responses: map[string]any{
				status(http.StatusOK):       envelope(exampleWord()),
				status(http.StatusNotFound): errNotFound("word"),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/words/{wordId}/audio",
			Description: "Get the pronunciation recording of a word.",
			Parameters: []types.Parameter{
				pathParam("wordId", "word id"),
				{Name: "accent", Type: "string", Description: "us, uk or au", Example: string(types.AccentUS)},
			},
			Responses: map[string]any{
				status(http.StatusOK):       envelope(exampleAudio()),
				status(http.StatusNotFound): errNotFound("audio"),
			},
		},
	}
}

func searchEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/search",
			Description: "Search the dictionary with filters, facets and suggestions.",
			RequestBody: exampleSearchRequest(),
			Responses: map[string]any{
				status(http.StatusOK):         envelope(exampleSearchResponse()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "query", Message: "required"}),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/search/suggest",
			Description: "Suggest words for a prefix.",
			Parameters: []types.Parameter{
				{Name: "q", Type: "string", Required: true, Description: "prefix to complete", Example: "resil"},
				{Name: "limit", Type: "integer", Description: "maximum number of suggestions", Example: 10},
			},
			Responses: map[string]any{
				status(http.StatusOK): envelope([]string{"resilience", "resilient", "resiliently"}),
			},
		},
	}
}

func vocabularyEndpoints() []types.APIEndpoint {
	vocabID := pathParam("vocabularyId", "vocabulary id")
	return []types.APIEndpoint{
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/vocabularies",
			Description: "List the signed-in user's vocabularies.",
			Parameters:  paginationParams(),
			Responses: map[string]any{
				status(http.StatusOK):           envelope(types.NewPaginationResponse([]types.Vocabulary{exampleVocabulary()}, 1, 1, types.DefaultPageSize)),
				status(http.StatusUnauthorized): errUnauthorized,
			},
		},
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/vocabularies",
			Description: "Create a vocabulary.",
			RequestBody: exampleVocabulary(),
			Responses: map[string]any{
				status(http.StatusCreated):    envelope(exampleVocabulary()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "name", Message: "required"}),
			},
		},
		{
			Method:      types.MethodDelete,
			Path:        apiPrefix + "/vocabularies/{vocabularyId}",
			Description: "Delete a vocabulary and its word entries.",
			Parameters:  []types.Parameter{vocabID},
			Responses: map[string]any{
				status(http.StatusOK):       envelope(true),
				status(http.StatusNotFound): errNotFound("vocabulary"),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/vocabularies/{vocabularyId}/words",
			Description: "List the words of a vocabulary.",
			Parameters:  append([]types.Parameter{vocabID}, paginationParams()...),
			Responses: map[string]any{
				status(http.StatusOK):       envelope(types.NewPaginationResponse([]types.VocabularyWord{exampleVocabularyWord()}, 128, 1, types.DefaultPageSize)),
				status(http.StatusNotFound): errNotFound("vocabulary"),
			},
		},
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/vocabularies/{vocabularyId}/words",
			Description: "Add a word to a vocabulary.",
			Parameters:  []types.Parameter{vocabID},
			RequestBody: exampleVocabularyWord(),
			Responses: map[string]any{
				status(http.StatusCreated):  envelope(exampleVocabularyWord()),
				status(http.StatusConflict): apiError(types.ErrCodeAlreadyExists, "word already in vocabulary"),
			},
		},
		{
			Method:      types.MethodDelete,
			Path:        apiPrefix + "/vocabularies/{vocabularyId}/words/{wordId}",
			Description: "Remove a word from a vocabulary.",
			Parameters:  []types.Parameter{vocabID, pathParam("wordId", "word id")},
			Responses: map[string]any{
				status(http.StatusOK):       envelope(true),
				status(http.StatusNotFound): errNotFound("word"),
			},
		},
	}
}

func studyEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/study/plan",
			Description: "Get today's review plan.",
			Responses: map[string]any{
				status(http.StatusOK):           envelope(exampleReviewPlan()),
				status(http.StatusUnauthorized): errUnauthorized,
			},
		},
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/study/sessions",
			Description: "Record a completed study session.",
			RequestBody: exampleStudySession(),
			Responses: map[string]any{
				status(http.StatusCreated):    envelope(exampleStudySession()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "accuracy", Message: "must be within [0, 1]"}),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/study/progress",
			Description: "Get the signed-in user's learning progress.",
			Responses: map[string]any{
				status(http.StatusOK): envelope(exampleProgress()),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/study/achievements",
			Description: "List achievements with unlock progress.",
			Responses: map[string]any{
				status(http.StatusOK): envelope(exampleAchievements()),
			},
		},
	}
}

func aiEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/ai/translate",
			Description: "Translate text between two languages.",
			RequestBody: exampleTranslationRequest(),
			Responses: map[string]any{
				status(http.StatusOK):         envelope(exampleTranslationResponse()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "targetLanguage", Message: "must differ from sourceLanguage"}),
			},
		},
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/ai/writing-assist",
			Description: "Check grammar, improve style, expand or summarize a text.",
			RequestBody: exampleWritingAssistRequest(),
			Responses: map[string]any{
				status(http.StatusOK):         envelope(exampleWritingAssistResponse()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "type", Message: "invalid value"}),
				status(http.StatusForbidden):  apiError(types.ErrCodeForbidden, "premium feature"),
			},
		},
	}
}

func speechEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/speech/evaluate",
			Description: "Score a recording against a reference text. audioData is base64.",
			RequestBody: exampleSpeechRequest(),
			Responses: map[string]any{
				status(http.StatusOK):         envelope(exampleSpeechResponse()),
				status(http.StatusBadRequest): validationError(types.FieldError{Field: "audioData", Message: "too large"}),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/speech/audio/{id}",
			Description: "Get a stored recording.",
			Parameters:  []types.Parameter{pathParam("id", "audio id")},
			Responses: map[string]any{
				status(http.StatusOK):       envelope(exampleAudio()),
				status(http.StatusNotFound): errNotFound("audio"),
			},
		},
	}
}

func ocrEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodPost,
			Path:        apiPrefix + "/ocr",
			Description: "Recognize text in an image. image is base64.",
			RequestBody: exampleOCRRequest(),
			Responses: map[string]any{
				status(http.StatusOK):                  envelope(exampleOCRResponse()),
				status(http.StatusBadRequest):          validationError(types.FieldError{Field: "image", Message: "required"}),
				status(http.StatusInternalServerError): errInternal,
			},
		},
	}
}

func systemEndpoints() []types.APIEndpoint {
	return []types.APIEndpoint{
		{
			Method:      types.MethodGet,
			Path:        "/health",
			Description: "Probe dependencies. Responds 503 when every dependency is down.",
			Responses: map[string]any{
				status(http.StatusOK):                 exampleHealth(types.ServiceStatusDegraded),
				status(http.StatusServiceUnavailable): exampleHealth(types.ServiceStatusDown),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        "/live",
			Description: "Liveness probe. Always 200.",
			Responses: map[string]any{
				status(http.StatusOK): types.NewHealthCheck(nil, 72*time.Hour, exampleTime),
			},
		},
		{
			Method:      types.MethodGet,
			Path:        apiPrefix + "/system/info",
			Description: "Get build and deployment information.",
			Responses: map[string]any{
				status(http.StatusOK): envelope(types.SystemInfo{
					Version:     "1.4.0",
					BuildTime:   "2024-01-15T09:00:00Z",
					Environment: "production",
					Features:    []string{"dictionary", "search", "learning", "ai", "speech", "ocr"},
				}),
			},
		},
	}
}
