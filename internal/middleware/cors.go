package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Fixed header sets for the public API. Methods and headers do not depend on
// the tenant; only the allow-origin value does.
const (
	publicAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	publicAllowHeaders = "Content-Type, Authorization"
)

// NormalizeOrigin canonicalizes one configured origin candidate: surrounding
// whitespace is trimmed, a missing scheme defaults to https, and a single
// trailing slash is stripped. The literal "*" passes through unchanged.
// Normalization is idempotent.
func NormalizeOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" || origin == "*" {
		return origin
	}
	if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
		origin = "https://" + origin
	}
	origin = strings.TrimSuffix(origin, "/")
	return origin
}

// ResolveAllowOrigin computes the Access-Control-Allow-Origin value for a
// request origin against an organization's configured allow-list.
//
// A nil config denies all cross-origin reads. The literal "*" allows any
// origin. Otherwise the config is a comma-separated candidate list; when it
// contains "*" or the normalized request origin, the request origin itself is
// reflected back (a wildcard would break credentialed requests). Anything
// else yields the empty string, which suppresses the header.
func ResolveAllowOrigin(requestOrigin string, allowedOrigins *string) string {
	if allowedOrigins == nil {
		return ""
	}
	if *allowedOrigins == "*" {
		return "*"
	}

	normalizedRequest := NormalizeOrigin(requestOrigin)
	for _, candidate := range strings.Split(*allowedOrigins, ",") {
		normalized := NormalizeOrigin(candidate)
		if normalized == "" {
			continue
		}
		if normalized == "*" {
			return requestOrigin
		}
		if normalizedRequest != "" && normalized == normalizedRequest {
			return requestOrigin
		}
	}
	return ""
}

// setPublicCORSHeaders writes the public API CORS headers onto the response.
// An empty allowOrigin removes the allow-origin header entirely, which is the
// deny state browsers enforce.
func setPublicCORSHeaders(c *gin.Context, allowOrigin string) {
	c.Header("Access-Control-Allow-Origin", allowOrigin)
	c.Header("Access-Control-Allow-Methods", publicAllowMethods)
	c.Header("Access-Control-Allow-Headers", publicAllowHeaders)
}
