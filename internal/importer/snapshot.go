package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/prodplan/internal/domain"
)

var (
	// ErrInvalidJSON indicates the payload is not well-formed JSON.
	ErrInvalidJSON = errors.New("backup file is not valid JSON")

	// ErrNotArray indicates the top-level JSON value is not an array.
	ErrNotArray = errors.New("unrecognized backup format: top-level value must be an array")

	// ErrInvalidRecord indicates an array element could not be decoded as a plan.
	ErrInvalidRecord = errors.New("invalid plan record")
)

// ParseSnapshot decodes a backup payload: a JSON array of plan objects.
// Fields are decoded by type only; nothing else about a record is checked.
func ParseSnapshot(data []byte) ([]*domain.ProductionPlan, error) {
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	plans := make([]*domain.ProductionPlan, 0, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, fmt.Errorf("%w at index %d: expected an object", ErrInvalidRecord, i)
		}
		var p domain.ProductionPlan
		if err := json.Unmarshal(elem, &p); err != nil {
			return nil, fmt.Errorf("%w at index %d: %v", ErrInvalidRecord, i, err)
		}
		plans = append(plans, &p)
	}
	return plans, nil
}

// LoadSnapshotFile reads and parses a backup file.
func LoadSnapshotFile(path string) ([]*domain.ProductionPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup file: %w", err)
	}
	return ParseSnapshot(data)
}

// EncodeSnapshot writes plans as a two-space indented JSON array.
// A nil slice is written as [] so the output always re-imports.
func EncodeSnapshot(w io.Writer, plans []*domain.ProductionPlan) error {
	if plans == nil {
		plans = []*domain.ProductionPlan{}
	}
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
