package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantProfile string
		wantRegion  string
		wantModel   string
		wantTimeout time.Duration
	}{
		{
			name:        "defaults",
			env:         map[string]string{},
			wantProfile: "",
			wantRegion:  DefaultRegion,
			wantModel:   DefaultModel,
			wantTimeout: DefaultTimeout,
		},
		{
			name: "explicit profile and region",
			env: map[string]string{
				"AWS_PROFILE": "work",
				"AWS_REGION":  "eu-west-1",
			},
			wantProfile: "work",
			wantRegion:  "eu-west-1",
			wantModel:   DefaultModel,
			wantTimeout: DefaultTimeout,
		},
		{
			name: "fallback region variable",
			env: map[string]string{
				"AWS_DEFAULT_REGION": "ap-southeast-2",
			},
			wantRegion:  "ap-southeast-2",
			wantModel:   DefaultModel,
			wantTimeout: DefaultTimeout,
		},
		{
			name: "AWS_REGION wins over AWS_DEFAULT_REGION",
			env: map[string]string{
				"AWS_REGION":         "us-west-2",
				"AWS_DEFAULT_REGION": "ap-southeast-2",
			},
			wantRegion:  "us-west-2",
			wantModel:   DefaultModel,
			wantTimeout: DefaultTimeout,
		},
		{
			name: "custom model and timeout",
			env: map[string]string{
				"BEDROCK_MODEL":   "amazon.nova-lite-v1:0",
				"BEDROCK_TIMEOUT": "120",
			},
			wantRegion:  DefaultRegion,
			wantModel:   "amazon.nova-lite-v1:0",
			wantTimeout: 120 * time.Second,
		},
		{
			name: "invalid timeout falls back to default",
			env: map[string]string{
				"BEDROCK_TIMEOUT": "soon",
			},
			wantRegion:  DefaultRegion,
			wantModel:   DefaultModel,
			wantTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"AWS_PROFILE", "AWS_REGION", "AWS_DEFAULT_REGION", "BEDROCK_MODEL", "BEDROCK_TIMEOUT"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			config := ConfigFromEnv()
			if config.Profile != tt.wantProfile {
				t.Errorf("Profile = %q, want %q", config.Profile, tt.wantProfile)
			}
			if config.Region != tt.wantRegion {
				t.Errorf("Region = %q, want %q", config.Region, tt.wantRegion)
			}
			if config.Model != tt.wantModel {
				t.Errorf("Model = %q, want %q", config.Model, tt.wantModel)
			}
			if config.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %v, want %v", config.Timeout, tt.wantTimeout)
			}
		})
	}
}
