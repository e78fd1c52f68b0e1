//go:build js && wasm

package env

import "github.com/syumai/workers/cloudflare"

// Get retrieves a variable from the Cloudflare Workers environment.
func Get(key string) (string, bool) {
	value := cloudflare.Getenv(key)
	if value == "" {
		return "", false
	}
	return value, true
}

// GetOrDefault retrieves an environment variable with a default value
func GetOrDefault(key, defaultValue string) string {
	if value, ok := Get(key); ok {
		return value
	}
	return defaultValue
}

// First returns the value of the first key that is set.
func First(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := Get(key); ok {
			return value, true
		}
	}
	return "", false
}
