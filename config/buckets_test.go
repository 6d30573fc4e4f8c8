package config

import "testing"

func TestGetBucketConfig(t *testing.T) {
	t.Setenv("SOURCE_BUCKET", "texts")
	t.Setenv("DESTINATION_BUCKET", "audio")

	bucketConfig, err := GetBucketConfig()
	if err != nil {
		t.Fatal("Failed to get bucket config:", err)
	}

	if bucketConfig.SourceBucket != "texts" {
		t.Errorf("Expected source bucket %q, got %q", "texts", bucketConfig.SourceBucket)
	}
	if bucketConfig.DestinationBucket != "audio" {
		t.Errorf("Expected destination bucket %q, got %q", "audio", bucketConfig.DestinationBucket)
	}
}

func TestGetBucketConfig_MissingSource(t *testing.T) {
	t.Setenv("SOURCE_BUCKET", "")
	t.Setenv("DESTINATION_BUCKET", "audio")

	_, err := GetBucketConfig()
	if err == nil {
		t.Fatal("Expected error when SOURCE_BUCKET is not set")
	}
}

func TestGetSynthesisConfig_Defaults(t *testing.T) {
	t.Setenv("VOICE_ID", "")
	t.Setenv("OUTPUT_FORMAT", "")

	synthesisConfig, err := GetSynthesisConfig()
	if err != nil {
		t.Fatal("Failed to get synthesis config:", err)
	}

	if synthesisConfig.VoiceID != "Joanna" {
		t.Errorf("Expected default voice %q, got %q", "Joanna", synthesisConfig.VoiceID)
	}
	if synthesisConfig.OutputFormat != "mp3" {
		t.Errorf("Expected default format %q, got %q", "mp3", synthesisConfig.OutputFormat)
	}
}

func TestGetAuditConfig_Optional(t *testing.T) {
	t.Setenv("AUDIT_TABLE_NAME", "")

	auditConfig, err := GetAuditConfig()
	if err != nil {
		t.Fatal("Failed to get audit config:", err)
	}
	if auditConfig != nil {
		t.Fatal("Expected nil audit config when AUDIT_TABLE_NAME is not set")
	}
}

func TestGetAuditConfig_TTLOverride(t *testing.T) {
	t.Setenv("AUDIT_TABLE_NAME", "conversions")
	t.Setenv("AUDIT_TTL_MINUTES", "60")

	auditConfig, err := GetAuditConfig()
	if err != nil {
		t.Fatal("Failed to get audit config:", err)
	}

	if auditConfig.TableName != "conversions" {
		t.Errorf("Expected table %q, got %q", "conversions", auditConfig.TableName)
	}
	if auditConfig.TTLMinutes != 60 {
		t.Errorf("Expected ttl 60, got %d", auditConfig.TTLMinutes)
	}
}
