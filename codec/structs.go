// Package codec converts tagged Go values to and from protobuf Struct
// messages. The json tags give the field names, so neither the storage
// records nor the gRPC payloads need generated code.
package codec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts v, which must encode to a JSON object.
func ToStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("value is not an object: %w", err)
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("value is not a protobuf struct: %w", err)
	}
	return s, nil
}

// FromStruct decodes s into v.
func FromStruct(s *structpb.Struct, v any) error {
	raw, err := s.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Marshal encodes v as a binary protobuf Struct.
func Marshal(v any) ([]byte, error) {
	s, err := ToStruct(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

// Unmarshal decodes a binary protobuf Struct into v.
func Unmarshal(data []byte, v any) error {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return err
	}
	return FromStruct(&s, v)
}
