// Package types is the shared contract between the dictionary, study, AI,
// speech and OCR services and their clients. It declares the JSON payloads
// exchanged on the wire and the closed value sets they use.
//
// Wire conventions:
//   - JSON field names are camelCase; optional fields are omitted when unset.
//   - String timestamps are RFC 3339. BaseResponse.Timestamp and
//     LoginResponse.ExpiresAt are Unix milliseconds.
//   - Confidences and accuracies are ratios in [0, 1]; scores are points
//     in [0, 100].
//   - Enumerations decode strictly: an unknown literal is a validation error.
package types
