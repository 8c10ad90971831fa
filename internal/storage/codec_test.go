package storage

import (
	"errors"
	"testing"

	"dynascore/internal/model"
)

func TestScoreRecordCodecRoundTrip(t *testing.T) {
	input := model.ScoreRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		SubmissionID:    "sub-1",
		Status:          model.StatusScored,
		Scores:          map[string]float64{"KS_ltf_E8": 42.5},
	}
	data, err := EncodeScoreRecord(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeScoreRecord(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if output.SubmissionID != "sub-1" || output.Scores["KS_ltf_E8"] != 42.5 {
		t.Fatalf("unexpected record: %+v", output)
	}
}

func TestDecodeScoreRecordVersionMismatch(t *testing.T) {
	input := model.ScoreRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion + 1, CodecVersion: CurrentCodecVersion},
		SubmissionID:    "sub-1",
	}
	data, err := EncodeScoreRecord(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeScoreRecord(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("err = %v, want ErrVersionMismatch", err)
	}
}

func TestValidationRecordCodecRoundTrip(t *testing.T) {
	input := model.ValidationRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		SubmissionID:    "sub-2",
		Status:          model.StatusValidated,
	}
	data, err := EncodeValidationRecord(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeValidationRecord(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if output.SubmissionID != "sub-2" || output.Status != model.StatusValidated {
		t.Fatalf("unexpected record: %+v", output)
	}
}
