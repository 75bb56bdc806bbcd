package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"mongodb": map[string]any{
			"uri":            "",
			"connectTimeout": "10s",
		},
		"scorer": map[string]any{
			"maxConcurrent": 4,
		},
		"jwt": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MONGODB_URI", want: "mongodb.uri"},
		{envKey: "MONGODB_CONNECTTIMEOUT", want: "mongodb.connectTimeout"},
		{envKey: "SCORER_MAXCONCURRENT", want: "scorer.maxConcurrent"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
