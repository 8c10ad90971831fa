package model

// Status is a terminal submission state shared by the scoring and
// validation steps. The string values are the wire contract of the
// challenge workflow and must not drift.
type Status string

const (
	StatusScored    Status = "SCORED"
	StatusInvalid   Status = "INVALID"
	StatusValidated Status = "VALIDATED"
)

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// ScoreRecord is the outcome of one scoring attempt. Scores is nil
// whenever Status is INVALID; a SCORED record may also carry an empty
// Scores map when no scorable system was present.
type ScoreRecord struct {
	VersionedRecord
	SubmissionID string             `json:"submission_id"`
	QueueID      string             `json:"queue_id,omitempty"`
	Status       Status             `json:"score_status"`
	Errors       string             `json:"score_errors"`
	Scores       map[string]float64 `json:"scores,omitempty"`
}

// ValidationRecord is the outcome of one pre-scoring validation attempt.
type ValidationRecord struct {
	VersionedRecord
	SubmissionID string `json:"submission_id"`
	Status       Status `json:"validation_status"`
	Errors       string `json:"validation_errors"`
}
