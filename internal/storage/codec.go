package storage

import (
	"encoding/json"
	"errors"

	"dynascore/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeScoreRecord(rec model.ScoreRecord) ([]byte, error) {
	return json.Marshal(rec)
}

func DecodeScoreRecord(data []byte) (model.ScoreRecord, error) {
	var rec model.ScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.ScoreRecord{}, err
	}
	if err := checkVersion(rec.VersionedRecord); err != nil {
		return model.ScoreRecord{}, err
	}
	return rec, nil
}

func EncodeValidationRecord(rec model.ValidationRecord) ([]byte, error) {
	return json.Marshal(rec)
}

func DecodeValidationRecord(data []byte) (model.ValidationRecord, error) {
	var rec model.ValidationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.ValidationRecord{}, err
	}
	if err := checkVersion(rec.VersionedRecord); err != nil {
		return model.ValidationRecord{}, err
	}
	return rec, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
