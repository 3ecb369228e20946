package types

import (
	"github.com/fxamacker/cbor/v2"
)

// Code and secrets locations understood by the off-chain compute runtime.
const (
	CodeLocationInline = uint8(0)
	CodeLocationRemote = uint8(1)

	SecretsLocationRemote = uint8(1)
	SecretsLocationHosted = uint8(2)

	LanguageJavaScript = uint8(0)
)

// ComputeRequest describes a computation to be executed by the off-chain
// runtime. It is encoded into a CBOR envelope before dispatch; the runtime
// interprets the fields, the chain does not.
type ComputeRequest struct {
	CodeLocation    uint8    `json:"code_location" cbor:"codeLocation"`
	SecretsLocation uint8    `json:"secrets_location" cbor:"secretsLocation,omitempty"`
	Language        uint8    `json:"language" cbor:"language"`
	Source          string   `json:"source" cbor:"source"`
	Secrets         []byte   `json:"secrets,omitempty" cbor:"secrets,omitempty"`
	Args            []string `json:"args,omitempty" cbor:"args,omitempty"`
	BytesArgs       [][]byte `json:"bytes_args,omitempty" cbor:"bytesArgs,omitempty"`
}

// hostedSecretsPointer addresses a secrets blob hosted by the runtime itself
// rather than an external encrypted reference.
type hostedSecretsPointer struct {
	SlotID  uint8  `cbor:"slotId"`
	Version uint64 `cbor:"version"`
}

// NewComputeRequest returns a request for inline JavaScript source.
func NewComputeRequest(source string) ComputeRequest {
	return ComputeRequest{
		CodeLocation: CodeLocationInline,
		Language:     LanguageJavaScript,
		Source:       source,
	}
}

// BuildComputeRequest assembles a request from its components. An explicit
// encrypted secrets reference takes precedence over a hosted slot/version
// pointer; the pointer is attached only when version is non-zero. Both
// mechanisms are mutually exclusive in the resulting request.
func BuildComputeRequest(source string, secretsReference []byte, secretsSlot uint8, secretsVersion uint64, args []string, bytesArgs [][]byte) (ComputeRequest, error) {
	if source == "" {
		return ComputeRequest{}, ErrInvalidArgument.Wrap("source code cannot be empty")
	}

	req := NewComputeRequest(source)

	switch {
	case len(secretsReference) > 0:
		req.SecretsLocation = SecretsLocationRemote
		req.Secrets = secretsReference
	case secretsVersion > 0:
		pointer, err := cbor.Marshal(hostedSecretsPointer{SlotID: secretsSlot, Version: secretsVersion})
		if err != nil {
			return ComputeRequest{}, ErrInvalidArgument.Wrapf("encode hosted secrets pointer: %s", err)
		}
		req.SecretsLocation = SecretsLocationHosted
		req.Secrets = pointer
	}

	if len(args) > 0 {
		req.Args = args
	}
	if len(bytesArgs) > 0 {
		req.BytesArgs = bytesArgs
	}

	return req, nil
}

// Encode serializes the request into the CBOR envelope the runtime consumes.
func (r ComputeRequest) Encode() ([]byte, error) {
	if r.Source == "" {
		return nil, ErrInvalidArgument.Wrap("source code cannot be empty")
	}
	bz, err := cbor.Marshal(r)
	if err != nil {
		return nil, ErrInvalidArgument.Wrapf("encode compute request: %s", err)
	}
	return bz, nil
}

// DecodeComputeRequest parses a CBOR envelope back into a request. Used by
// tests and by tooling that inspects dispatched payloads.
func DecodeComputeRequest(bz []byte) (ComputeRequest, error) {
	var req ComputeRequest
	if err := cbor.Unmarshal(bz, &req); err != nil {
		return ComputeRequest{}, ErrInvalidArgument.Wrapf("decode compute request: %s", err)
	}
	return req, nil
}
