package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Payload is implemented by every upstream response schema.
type Payload interface {
	// Reported returns the upstream status flag and whether it was present at all.
	Reported() (ok bool, present bool)
}

// Status is the success discriminant shared by all upstream responses.
type Status struct {
	Status *bool `json:"status"`
}

func (s Status) Reported() (bool, bool) {
	if s.Status == nil {
		return false, false
	}
	return *s.Status, true
}

// DownloadRequest is the inbound call: which platform, which source URL.
type DownloadRequest struct {
	Platform  string
	SourceURL string
}

// Response is the success envelope. Fields must encode as a JSON object; its keys
// are spliced between the platform label and the trailing timestamp and message.
type Response[R any] struct {
	Platform  string
	Fields    R
	QueriedAt string
	Message   string
}

func (r Response[R]) MarshalJSON() ([]byte, error) {
	fields, err := json.Marshal(r.Fields)
	if err != nil {
		return nil, err
	}
	fields = bytes.TrimSpace(fields)
	if len(fields) < 2 || fields[0] != '{' || fields[len(fields)-1] != '}' {
		return nil, errors.New("response fields must encode as a JSON object")
	}

	var buf bytes.Buffer
	buf.WriteString(`{"éxito":true,"plataforma":`)
	if err := writeString(&buf, r.Platform); err != nil {
		return nil, err
	}
	if inner := bytes.TrimSpace(fields[1 : len(fields)-1]); len(inner) > 0 {
		buf.WriteByte(',')
		buf.Write(inner)
	}
	buf.WriteString(`,"consultado_en":`)
	if err := writeString(&buf, r.QueriedAt); err != nil {
		return nil, err
	}
	buf.WriteString(`,"mensaje":`)
	if err := writeString(&buf, r.Message); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode string: %w", err)
	}
	buf.Write(b)
	return nil
}

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Success bool   `json:"éxito"`
	Message string `json:"mensaje"`
}
